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

package shifter

import (
	"fmt"

	"github.com/d100/ee/disassembly"
	"github.com/d100/ee/hardware/cpu"
)

// bit 3 of input port one is always set
const portOneFixed = 0x08

// ShiftRegister is the dedicated shift hardware of the Space Invaders board.
// The CPU writes bytes to port 4 and reads them back through port 3, offset
// by the amount written to port 2. The board's inputs are also read through
// this device.
type ShiftRegister struct {
	InPortOne uint8
	InPortTwo uint8

	// out port 2
	ShiftAmount uint8

	// out ports 3 and 5. the sound hardware is not emulated but the values
	// are kept
	SoundOne uint8
	SoundTwo uint8

	// out port 4. each write moves the previous high byte into the low byte
	Low  uint8
	High uint8
}

// NewShiftRegister is the preferred method of initialisation for the
// ShiftRegister type.
func NewShiftRegister() *ShiftRegister {
	return &ShiftRegister{
		InPortOne: portOneFixed,
	}
}

func (sr *ShiftRegister) String() string {
	return fmt.Sprintf("in1=%02x in2=%02x shift=%d value=%02x%02x snd1=%02x snd2=%02x",
		sr.InPortOne|portOneFixed, sr.InPortTwo, sr.ShiftAmount, sr.High, sr.Low, sr.SoundOne, sr.SoundTwo)
}

// In returns the value read from the port.
func (sr *ShiftRegister) In(port uint8) uint8 {
	switch port {
	case 0, 1:
		return sr.InPortOne | portOneFixed
	case 2:
		return sr.InPortTwo
	case 3:
		v := (uint16(sr.High)<<8 | uint16(sr.Low)) << sr.ShiftAmount
		return uint8(v >> 8)
	}
	return 0
}

// Out writes the value to the port.
func (sr *ShiftRegister) Out(port uint8, a uint8) {
	switch port {
	case 2:
		sr.ShiftAmount = a & 0x07
	case 3:
		sr.SoundOne = a
	case 4:
		sr.Low = sr.High
		sr.High = a
	case 5:
		sr.SoundTwo = a
	case 6:
		// watchdog
	}
}

// Press sets the bit for the Input.
func (sr *ShiftRegister) Press(i Input) {
	b, ok := inputBits[i]
	if !ok {
		return
	}
	if b.port == 1 {
		sr.InPortOne |= b.mask
	} else {
		sr.InPortTwo |= b.mask
	}
}

// Release clears the bit for the Input.
func (sr *ShiftRegister) Release(i Input) {
	b, ok := inputBits[i]
	if !ok {
		return
	}
	if b.port == 1 {
		sr.InPortOne &^= b.mask
	} else {
		sr.InPortTwo &^= b.mask
	}
}

// Handlers returns the IN and OUT instruction handlers that connect the
// ShiftRegister to the CPU. They should be installed with CPU.SetOverride().
func (sr *ShiftRegister) Handlers() (in cpu.Handler, out cpu.Handler) {
	in = func(mc *cpu.CPU, ins disassembly.Instruction) int {
		mc.A.Load(sr.In(mc.Read(ins.Address + 1)))
		mc.PC.Add(uint16(ins.Length))
		return ins.Cycles
	}
	out = func(mc *cpu.CPU, ins disassembly.Instruction) int {
		sr.Out(mc.Read(ins.Address+1), mc.A.Value())
		mc.PC.Add(uint16(ins.Length))
		return ins.Cycles
	}
	return in, out
}
