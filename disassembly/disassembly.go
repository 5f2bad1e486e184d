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
	"fmt"
	"strings"

	"github.com/d100/ee/hardware/cpu/instructions"
	"github.com/d100/ee/hardware/preferences"
	"github.com/d100/ee/logger"
)

// Memory is the interface required by the disassembler to read the
// instruction stream.
type Memory interface {
	Read(address uint16) uint8
}

// Halter is implemented by the component that should be stopped when an
// unknown opcode is decoded.
type Halter interface {
	Halt()
}

// Disassembler decodes the instruction stream found in Memory.
type Disassembler struct {
	mem   Memory
	tab   *instructions.Table
	halt  Halter
	prefs *preferences.Preferences
}

// NewDisassembler is the preferred method of initialisation for the
// Disassembler type. The halt argument can be nil, in which case unknown
// opcodes are logged but nothing is halted.
func NewDisassembler(mem Memory, tab *instructions.Table, halt Halter, prefs *preferences.Preferences) *Disassembler {
	if prefs == nil {
		prefs = preferences.Defaults()
	}
	return &Disassembler{
		mem:   mem,
		tab:   tab,
		halt:  halt,
		prefs: prefs,
	}
}

// Decode the instruction at address. Returns false if the opcode is not
// defined. In that case the returned Instruction has a length of zero and, if
// the halt-on-unknown preference is set, the Halter will have been called.
func (dsm *Disassembler) Decode(address uint16) (Instruction, bool) {
	opcode := dsm.mem.Read(address)

	defn, ok := dsm.tab.Lookup(opcode)
	if !ok {
		dsm.unknown(opcode, address)
		return Instruction{
			Address: address,
			OpCode:  opcode,
		}, false
	}

	return Instruction{
		Address: address,
		OpCode:  opcode,
		Text:    fmt.Sprintf("%04X %02X %s", address, opcode, dsm.operands(address, defn)),
		Length:  defn.Bytes,
		Cycles:  defn.Cycles,
		Defn:    defn,
	}, true
}

// InstructionLength returns the number of bytes occupied by the instruction
// at address. Returns zero if the opcode is not defined, with the same halt
// policy as Decode().
func (dsm *Disassembler) InstructionLength(address uint16) int {
	opcode := dsm.mem.Read(address)
	defn, ok := dsm.tab.Lookup(opcode)
	if !ok {
		dsm.unknown(opcode, address)
		return 0
	}
	return defn.Bytes
}

func (dsm *Disassembler) unknown(opcode uint8, address uint16) {
	logger.Logf(logger.Allow, "disassembly", "unknown instruction 0x%02x at %04x", opcode, address)
	if dsm.halt != nil && dsm.prefs.HaltOnUnknown.Get().(bool) {
		dsm.halt.Halt()
	}
}

// substitute the operand placeholders in the mnemonic with the bytes that
// follow the opcode. 16-bit operands are stored little-endian.
func (dsm *Disassembler) operands(address uint16, defn instructions.Definition) string {
	m := defn.Mnemonic

	switch defn.AddressingMode {
	case instructions.Direct:
		lo := dsm.mem.Read(address + 1)
		hi := dsm.mem.Read(address + 2)
		m = strings.Replace(m, "a16", fmt.Sprintf("$%02x%02x", hi, lo), 1)
	case instructions.ImmediateWord:
		lo := dsm.mem.Read(address + 1)
		hi := dsm.mem.Read(address + 2)
		m = strings.Replace(m, "d16", fmt.Sprintf("#$%02x%02x", hi, lo), 1)
	case instructions.ImmediateByte:
		m = strings.Replace(m, "d8", fmt.Sprintf("#$%02x", dsm.mem.Read(address+1)), 1)
	}

	return m
}
