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
	"errors"
	"fmt"
	"io"

	"github.com/d100/ee/disassembly"
	"github.com/d100/ee/hardware/cpu/execution"
	"github.com/d100/ee/hardware/cpu/instructions"
	"github.com/d100/ee/hardware/cpu/registers"
	"github.com/d100/ee/hardware/memory/memorymap"
	"github.com/d100/ee/hardware/preferences"
	"github.com/d100/ee/logger"
)

// ErrDisabled is returned by ExecuteInstruction() and Step() when the
// ProcessorEnabled control bit is not set.
var ErrDisabled = errors.New("cpu: processor is disabled")

// Memory is the interface to the address space required by the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Handler implements a single instruction. The handler is responsible for
// advancing the program counter and returns the number of cycles taken.
type Handler func(mc *CPU, ins disassembly.Instruction) int

// CPU implements the Intel 8080. Register logic is implemented by the
// Register type in the registers sub-package.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer

	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	// register pairs refer to the registers above
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	Flags registers.Flags

	// emulator control bits. may be changed from outside the emulation
	// goroutine
	Control registers.Control

	// some operations need a scratch register
	acc8 registers.Register

	mem   Memory
	prefs *preferences.Preferences
	tab   *instructions.Table
	dsm   *disassembly.Disassembler

	// handlers for every defined opcode. overrides are supplied by the
	// machine and take priority
	handlers  [256]Handler
	overrides [256]Handler

	history *execution.History

	// output from the diagnostic console trap
	console io.Writer

	clock  Clock
	timing interruptTiming
	stats  Stats
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// preferences argument can be nil, in which case the default preferences are
// used.
func NewCPU(mem Memory, prefs *preferences.Preferences) (*CPU, error) {
	if prefs == nil {
		prefs = preferences.Defaults()
	}

	tab, err := instructions.NewTable()
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	mc := &CPU{
		PC:       registers.NewProgramCounter(0),
		SP:       registers.NewStackPointer(0),
		A:        registers.NewRegister(0, "A"),
		B:        registers.NewRegister(0, "B"),
		C:        registers.NewRegister(0, "C"),
		D:        registers.NewRegister(0, "D"),
		E:        registers.NewRegister(0, "E"),
		H:        registers.NewRegister(0, "H"),
		L:        registers.NewRegister(0, "L"),
		Flags:    registers.NewFlags(),
		acc8:     registers.NewRegister(0, "accumulator"),
		mem:      mem,
		prefs:    prefs,
		tab:      tab,
		handlers: instructionSet(),
		history:  execution.NewHistory(),
		console:  io.Discard,
		clock:    newMonotonicClock(),
	}

	mc.BC = registers.NewPair(&mc.B, &mc.C)
	mc.DE = registers.NewPair(&mc.D, &mc.E)
	mc.HL = registers.NewPair(&mc.H, &mc.L)

	mc.dsm = disassembly.NewDisassembler(mem, tab, mc, prefs)

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s %s %s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L,
		mc.Flags.Label(), mc.Flags)
}

// Reset reinitialises all registers and flags. The Control bits are not
// affected.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.Flags.Reset()
	mc.stats = Stats{}
	mc.timing = interruptTiming{}
}

// SetOverride installs a handler for the opcode that takes priority over the
// built-in handler. Used by machines to implement the IN and OUT
// instructions.
func (mc *CPU) SetOverride(opcode uint8, h Handler) {
	mc.overrides[opcode] = h
}

// ClearOverride removes the override for the opcode.
func (mc *CPU) ClearOverride(opcode uint8) {
	mc.overrides[opcode] = nil
}

// Halt disables the processor. The run loop will exit at the next
// opportunity.
func (mc *CPU) Halt() {
	mc.Control.ProcessorEnabled.Store(false)
}

// Console sets the destination for output from the diagnostic console trap.
func (mc *CPU) Console(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mc.console = w
}

// History returns the execution history. Entries are added only while the
// TraceCapture control bit is set.
func (mc *CPU) History() *execution.History {
	return mc.history
}

// Disassembler returns the disassembler used by the CPU.
func (mc *CPU) Disassembler() *disassembly.Disassembler {
	return mc.dsm
}

// Read a byte from memory.
func (mc *CPU) Read(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Write a byte to memory. Writes to the ROM area are refused unless the
// Diagnostic control bit is set. A refused write disables the processor.
func (mc *CPU) Write(address uint16, data uint8) {
	if memorymap.IsROM(address) && !mc.Control.Diagnostic.Load() {
		logger.Logf(logger.Allow, "cpu", "unsafe write to ROM at %04x (pc %04x)", address, mc.PC.Address())
		mc.Halt()
		return
	}
	mc.mem.Write(address, data)
}

// Interrupt pushes the program counter and jumps to the restart address for
// the vector. Interrupts are disabled as a result.
func (mc *CPU) Interrupt(vector int) {
	mc.push(mc.PC.Address())
	mc.PC.Load(uint16(vector * 8))
	mc.Flags.InterruptEnable = false
}

// push value onto the stack. the high byte is written first, at the higher
// address
func (mc *CPU) push(v uint16) {
	sp := mc.SP.Address()
	mc.Write(sp-1, uint8(v>>8))
	mc.Write(sp-2, uint8(v))
	mc.SP.Push()
}

func (mc *CPU) pop() uint16 {
	sp := mc.SP.Address()
	lo := mc.mem.Read(sp)
	hi := mc.mem.Read(sp + 1)
	mc.SP.Pop()
	return uint16(hi)<<8 | uint16(lo)
}

// the byte following the opcode
func (mc *CPU) immediate8() uint8 {
	return mc.mem.Read(mc.PC.Address() + 1)
}

// the two bytes following the opcode. low byte first
func (mc *CPU) immediate16() uint16 {
	lo := mc.mem.Read(mc.PC.Address() + 1)
	hi := mc.mem.Read(mc.PC.Address() + 2)
	return uint16(hi)<<8 | uint16(lo)
}
