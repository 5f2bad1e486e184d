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

// the rotate instructions only affect the carry flag.

func rlc(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.Carry = mc.A.RLC()
	return next(mc, ins)
}

func rrc(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.Carry = mc.A.RRC()
	return next(mc, ins)
}

func ral(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.Carry = mc.A.RAL(mc.Flags.Carry)
	return next(mc, ins)
}

func rar(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.Carry = mc.A.RAR(mc.Flags.Carry)
	return next(mc, ins)
}

// CMA does not affect any flags.
func cma(mc *CPU, ins disassembly.Instruction) int {
	mc.A.Complement()
	return next(mc, ins)
}

func stc(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.Carry = true
	return next(mc, ins)
}

func cmc(mc *CPU, ins disassembly.Instruction) int {
	mc.Flags.Carry = !mc.Flags.Carry
	return next(mc, ins)
}
