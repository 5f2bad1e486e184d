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

package disassembly

import (
	"github.com/d100/ee/hardware/cpu/instructions"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Address uint16
	OpCode  uint8

	// formatted as the address, the opcode and the mnemonic with the operand
	// placeholders substituted. for example:
	//
	//	1A5C 3E MVI A,#$01
	Text string

	// number of bytes occupied by the instruction. zero if the instruction
	// could not be decoded
	Length int

	// base number of cycles taken by the instruction
	Cycles int

	Defn instructions.Definition
}

func (ins Instruction) String() string {
	return ins.Text
}

// IsValid returns false if the Instruction is the sentinel returned for an
// unknown opcode.
func (ins Instruction) IsValid() bool {
	return ins.Length > 0
}
