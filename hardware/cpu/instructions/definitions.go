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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied       AddressingMode = iota // STC
	Register                            // MOV A,B
	ImmediateByte                       // MVI A,d8
	ImmediateWord                       // LXI H,d16
	Direct                              // LDA a16. low byte precedes high byte
)

func (am AddressingMode) String() string {
	switch am {
	case Implied:
		return "implied"
	case Register:
		return "register"
	case ImmediateByte:
		return "immediate byte"
	case ImmediateWord:
		return "immediate word"
	case Direct:
		return "direct"
	}
	return "unknown"
}

// the number of bytes an instruction occupies for each addressing mode.
var modeBytes = map[AddressingMode]int{
	Implied:       1,
	Register:      1,
	ImmediateByte: 2,
	ImmediateWord: 3,
	Direct:        3,
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	AddressingMode AddressingMode
	Bytes          int
	Cycles         int

	// cycles for the conditional CALL and RET instructions when the condition
	// is false. zero for all other instructions
	NotTakenCycles int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode)
}

// IsConditional returns true if instruction has a different cycle count
// depending on whether the condition was met.
func (defn Definition) IsConditional() bool {
	return defn.NotTakenCycles > 0
}
