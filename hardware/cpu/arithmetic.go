// This file is part of EE.
//
// EE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EE.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/d100/ee/disassembly"
)

// the operation field of the 10aaasss and 11aaa110 opcodes
const (
	aluADD = iota
	aluADC
	aluSUB
	aluSBB
	aluANA
	aluXRA
	aluORA
	aluCMP
)

// perform the arithmetic or logical operation on the accumulator.
func (mc *CPU) operate(operation uint8, v uint8) {
	switch operation & 0x07 {
	case aluADD:
		mc.Flags.Carry, mc.Flags.AuxCarry = mc.A.Add(v, false)
		mc.Flags.SetZSP(mc.A.Value())
	case aluADC:
		mc.Flags.Carry, mc.Flags.AuxCarry = mc.A.Add(v, mc.Flags.Carry)
		mc.Flags.SetZSP(mc.A.Value())
	case aluSUB:
		mc.Flags.Carry, mc.Flags.AuxCarry = mc.A.Subtract(v, false)
		mc.Flags.SetZSP(mc.A.Value())
	case aluSBB:
		mc.Flags.Carry, mc.Flags.AuxCarry = mc.A.Subtract(v, mc.Flags.Carry)
		mc.Flags.SetZSP(mc.A.Value())
	case aluANA:
		mc.A.AND(v)
		mc.logical()
	case aluXRA:
		mc.A.XOR(v)
		mc.logical()
	case aluORA:
		mc.A.OR(v)
		mc.logical()
	case aluCMP:
		// compare is a subtraction that discards the result
		mc.acc8.Load(mc.A.Value())
		mc.Flags.Carry, mc.Flags.AuxCarry = mc.acc8.Subtract(v, false)
		mc.Flags.SetZSP(mc.acc8.Value())
	}
}

// flags after a logical operation. carry and aux carry are always cleared
func (mc *CPU) logical() {
	mc.Flags.Carry = false
	mc.Flags.AuxCarry = false
	mc.Flags.SetZSP(mc.A.Value())
}

// ADD ADC SUB SBB ANA XRA ORA CMP with register or memory operand.
func alu(mc *CPU, ins disassembly.Instruction) int {
	mc.operate(ins.OpCode>>3, mc.get(ins.OpCode))
	return next(mc, ins)
}

// ADI ACI SUI SBI ANI XRI ORI CPI.
func alui(mc *CPU, ins disassembly.Instruction) int {
	mc.operate(ins.OpCode>>3, mc.immediate8())
	return next(mc, ins)
}

// INR does not affect the carry flag.
func inr(mc *CPU, ins disassembly.Instruction) int {
	r := ins.OpCode >> 3
	mc.acc8.Load(mc.get(r))
	mc.Flags.AuxCarry = mc.acc8.Increment()
	mc.Flags.SetZSP(mc.acc8.Value())
	mc.set(r, mc.acc8.Value())
	return next(mc, ins)
}

// DCR does not affect the carry flag.
func dcr(mc *CPU, ins disassembly.Instruction) int {
	r := ins.OpCode >> 3
	mc.acc8.Load(mc.get(r))
	mc.Flags.AuxCarry = mc.acc8.Decrement()
	mc.Flags.SetZSP(mc.acc8.Value())
	mc.set(r, mc.acc8.Value())
	return next(mc, ins)
}

// INX and DCX do not affect any flags.
func inx(mc *CPU, ins disassembly.Instruction) int {
	mc.addPair(ins.OpCode>>4, 1)
	return next(mc, ins)
}

func dcx(mc *CPU, ins disassembly.Instruction) int {
	mc.addPair(ins.OpCode>>4, -1)
	return next(mc, ins)
}

// DAD adds the register pair to HL. Only the carry flag is affected.
func dad(mc *CPU, ins disassembly.Instruction) int {
	v := uint32(mc.HL.Address()) + uint32(mc.pair(ins.OpCode>>4))
	mc.Flags.Carry = v > 0xffff
	mc.HL.Load(uint16(v))
	return next(mc, ins)
}

// DAA adjusts the accumulator so that it holds two binary coded decimal
// digits.
func daa(mc *CPU, ins disassembly.Instruction) int {
	a := mc.A.Value()
	lsn := a & 0x0f
	msn := a >> 4

	var correction uint8
	carry := mc.Flags.Carry

	if mc.Flags.AuxCarry || lsn > 9 {
		correction |= 0x06
	}
	if mc.Flags.Carry || msn > 9 || (msn >= 9 && lsn > 9) {
		correction |= 0x60
		carry = true
	}

	_, mc.Flags.AuxCarry = mc.A.Add(correction, false)
	mc.Flags.Carry = carry
	mc.Flags.SetZSP(mc.A.Value())

	return next(mc, ins)
}
