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

// MOV d,s. Either operand may be the memory location addressed by HL.
func mov(mc *CPU, ins disassembly.Instruction) int {
	mc.set(ins.OpCode>>3, mc.get(ins.OpCode))
	return next(mc, ins)
}

func mvi(mc *CPU, ins disassembly.Instruction) int {
	mc.set(ins.OpCode>>3, mc.immediate8())
	return next(mc, ins)
}

func lxi(mc *CPU, ins disassembly.Instruction) int {
	mc.loadPair(ins.OpCode>>4, mc.immediate16())
	return next(mc, ins)
}

func lda(mc *CPU, ins disassembly.Instruction) int {
	mc.A.Load(mc.mem.Read(mc.immediate16()))
	return next(mc, ins)
}

func sta(mc *CPU, ins disassembly.Instruction) int {
	mc.Write(mc.immediate16(), mc.A.Value())
	return next(mc, ins)
}

// LHLD loads L from the address and H from the address plus one.
func lhld(mc *CPU, ins disassembly.Instruction) int {
	a := mc.immediate16()
	mc.L.Load(mc.mem.Read(a))
	mc.H.Load(mc.mem.Read(a + 1))
	return next(mc, ins)
}

func shld(mc *CPU, ins disassembly.Instruction) int {
	a := mc.immediate16()
	mc.Write(a, mc.L.Value())
	mc.Write(a+1, mc.H.Value())
	return next(mc, ins)
}

// LDAX and STAX only exist for the BC and DE pairs.
func ldax(mc *CPU, ins disassembly.Instruction) int {
	mc.A.Load(mc.mem.Read(mc.pair(ins.OpCode >> 4)))
	return next(mc, ins)
}

func stax(mc *CPU, ins disassembly.Instruction) int {
	mc.Write(mc.pair(ins.OpCode>>4), mc.A.Value())
	return next(mc, ins)
}

func xchg(mc *CPU, ins disassembly.Instruction) int {
	de := mc.DE.Address()
	mc.DE.Load(mc.HL.Address())
	mc.HL.Load(de)
	return next(mc, ins)
}

// XTHL exchanges HL with the two bytes on the top of the stack.
func xthl(mc *CPU, ins disassembly.Instruction) int {
	sp := mc.SP.Address()
	lo := mc.mem.Read(sp)
	hi := mc.mem.Read(sp + 1)
	mc.Write(sp, mc.L.Value())
	mc.Write(sp+1, mc.H.Value())
	mc.L.Load(lo)
	mc.H.Load(hi)
	return next(mc, ins)
}

func sphl(mc *CPU, ins disassembly.Instruction) int {
	mc.SP.Load(mc.HL.Address())
	return next(mc, ins)
}

// PUSH and POP use pair code 3 for the PSW. The accumulator is the high byte
// and the flags are the low byte.
func push(mc *CPU, ins disassembly.Instruction) int {
	rp := (ins.OpCode >> 4) & 0x03
	if rp == pairSP {
		mc.push(uint16(mc.A.Value())<<8 | uint16(mc.Flags.Value()))
	} else {
		mc.push(mc.pair(rp))
	}
	return next(mc, ins)
}

func pop(mc *CPU, ins disassembly.Instruction) int {
	rp := (ins.OpCode >> 4) & 0x03
	v := mc.pop()
	if rp == pairSP {
		mc.A.Load(uint8(v >> 8))
		mc.Flags.FromValue(uint8(v))
	} else {
		mc.loadPair(rp, v)
	}
	return next(mc, ins)
}
