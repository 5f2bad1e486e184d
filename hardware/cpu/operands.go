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
	"github.com/d100/ee/hardware/cpu/registers"
)

// register codes as encoded in the opcode. code 6 refers to the memory
// location addressed by HL.
const regM = 6

func (mc *CPU) reg(code uint8) *registers.Register {
	switch code & 0x07 {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		return &mc.H
	case 5:
		return &mc.L
	case 7:
		return &mc.A
	}
	return nil
}

// get value of the register (or memory location) referred to by code.
func (mc *CPU) get(code uint8) uint8 {
	if code&0x07 == regM {
		return mc.mem.Read(mc.HL.Address())
	}
	return mc.reg(code).Value()
}

// set value of the register (or memory location) referred to by code.
func (mc *CPU) set(code uint8, v uint8) {
	if code&0x07 == regM {
		mc.Write(mc.HL.Address(), v)
		return
	}
	mc.reg(code).Load(v)
}

// register pair codes as encoded in the opcode. code 3 is SP or PSW depending
// on the instruction.
const (
	pairBC = iota
	pairDE
	pairHL
	pairSP
)

func (mc *CPU) pair(code uint8) uint16 {
	switch code & 0x03 {
	case pairBC:
		return mc.BC.Address()
	case pairDE:
		return mc.DE.Address()
	case pairHL:
		return mc.HL.Address()
	}
	return mc.SP.Address()
}

func (mc *CPU) loadPair(code uint8, v uint16) {
	switch code & 0x03 {
	case pairBC:
		mc.BC.Load(v)
	case pairDE:
		mc.DE.Load(v)
	case pairHL:
		mc.HL.Load(v)
	default:
		mc.SP.Load(v)
	}
}

// add a signed value to the register pair, wrapping at 64K.
func (mc *CPU) addPair(code uint8, v int) {
	switch code & 0x03 {
	case pairBC:
		mc.BC.Add(v)
	case pairDE:
		mc.DE.Add(v)
	case pairHL:
		mc.HL.Add(v)
	default:
		mc.SP.Add(v)
	}
}

// condition codes as encoded in conditional jump, call and return opcodes.
func (mc *CPU) condition(code uint8) bool {
	switch code & 0x07 {
	case 0: // NZ
		return !mc.Flags.Zero
	case 1: // Z
		return mc.Flags.Zero
	case 2: // NC
		return !mc.Flags.Carry
	case 3: // C
		return mc.Flags.Carry
	case 4: // PO
		return !mc.Flags.Parity
	case 5: // PE
		return mc.Flags.Parity
	case 6: // P
		return !mc.Flags.Sign
	}
	// M
	return mc.Flags.Sign
}
