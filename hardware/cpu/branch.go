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
	"io"
	"strings"

	"github.com/d100/ee/disassembly"
	"github.com/d100/ee/logger"
)

func jmp(mc *CPU, ins disassembly.Instruction) int {
	mc.PC.Load(mc.immediate16())
	return ins.Cycles
}

// conditional jumps take the same number of cycles whether or not the jump
// is taken.
func jcc(mc *CPU, ins disassembly.Instruction) int {
	if mc.condition(ins.OpCode >> 3) {
		mc.PC.Load(mc.immediate16())
		return ins.Cycles
	}
	return next(mc, ins)
}

func pchl(mc *CPU, ins disassembly.Instruction) int {
	mc.PC.Load(mc.HL.Address())
	return ins.Cycles
}

func call(mc *CPU, ins disassembly.Instruction) int {
	target := mc.immediate16()
	if mc.consoleTrap(target) {
		return next(mc, ins)
	}
	mc.push(mc.PC.Address() + uint16(ins.Length))
	mc.PC.Load(target)
	return ins.Cycles
}

func ccc(mc *CPU, ins disassembly.Instruction) int {
	if mc.condition(ins.OpCode >> 3) {
		return call(mc, ins)
	}
	mc.PC.Add(uint16(ins.Length))
	return ins.Defn.NotTakenCycles
}

func ret(mc *CPU, ins disassembly.Instruction) int {
	mc.PC.Load(mc.pop())
	return ins.Cycles
}

func rcc(mc *CPU, ins disassembly.Instruction) int {
	if mc.condition(ins.OpCode >> 3) {
		return ret(mc, ins)
	}
	mc.PC.Add(uint16(ins.Length))
	return ins.Defn.NotTakenCycles
}

// RST n is a one byte call to address 8*n.
func rst(mc *CPU, ins disassembly.Instruction) int {
	mc.push(mc.PC.Address() + uint16(ins.Length))
	mc.PC.Load(uint16(ins.OpCode & 0x38))
	return ins.Cycles
}

// the address of the CP/M BDOS entry point. the CPU diagnostic program calls
// this address to print its messages
const consoleVector = 0x0005

// BDOS functions supported by the console trap
const (
	consoleOutput = 2
	consolePrint  = 9
)

// consoleTrap intercepts calls to the BDOS entry point when the Diagnostic
// control bit is set. Returns true if the call has been handled, in which
// case nothing is pushed onto the stack and the call should be skipped.
func (mc *CPU) consoleTrap(target uint16) bool {
	if target != consoleVector || !mc.Control.Diagnostic.Load() {
		return false
	}

	switch mc.C.Value() {
	case consolePrint:
		s := strings.Builder{}

		// messages are terminated with a dollar sign. the length of a message
		// is limited to the size of memory
		a := mc.DE.Address() + 3
		for i := 0; i < 0x10000; i++ {
			b := mc.mem.Read(a)
			if b == '$' {
				break
			}
			s.WriteByte(b)
			a++
		}

		io.WriteString(mc.console, s.String())
		io.WriteString(mc.console, "\n")
		logger.Log(logger.Allow, "diag", strings.TrimSpace(s.String()))

	case consoleOutput:
		c := string([]byte{mc.E.Value()})
		io.WriteString(mc.console, c)
		logger.Log(logger.Allow, "diag", c)
	}

	return true
}
