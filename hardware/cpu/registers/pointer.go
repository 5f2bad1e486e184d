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

package registers

import "fmt"

// ProgramCounter is the 16-bit program counter. Values wrap silently at the
// 64K boundary.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the canonical name for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the PC. Returns true if the addition wrapped around the top
// of memory.
func (pc *ProgramCounter) Add(val uint16) (wrapped bool) {
	v := pc.value
	pc.value += val
	return pc.value < v
}

// StackPointer is the 16-bit stack pointer. The stack grows downwards and
// values wrap silently at the 64K boundary.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#04x", sp.value)
}

// Address returns the current value of the stack pointer.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Push moves the stack pointer down by two bytes.
func (sp *StackPointer) Push() {
	sp.value -= 2
}

// Pop moves the stack pointer up by two bytes.
func (sp *StackPointer) Pop() {
	sp.value += 2
}

// Add a signed value to the stack pointer. Used by INX SP and DCX SP.
func (sp *StackPointer) Add(val int) {
	sp.value += uint16(val)
}

// Pair is two 8-bit registers treated as one 16-bit value. The first register
// is the high byte.
type Pair struct {
	label string
	Hi    *Register
	Lo    *Register
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(hi *Register, lo *Register) Pair {
	return Pair{
		label: hi.Label() + lo.Label(),
		Hi:    hi,
		Lo:    lo,
	}
}

// Label returns the name of the pair. For example "HL".
func (p Pair) Label() string {
	return p.label
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.Address())
}

// Address composes the two registers into a 16-bit value.
func (p Pair) Address() uint16 {
	return uint16(p.Hi.Value())<<8 | uint16(p.Lo.Value())
}

// Load a 16-bit value into the pair.
func (p Pair) Load(val uint16) {
	p.Hi.Load(uint8(val >> 8))
	p.Lo.Load(uint8(val))
}

// Add a signed value to the pair, wrapping at the 64K boundary. Used by INX
// and DCX.
func (p Pair) Add(val int) {
	p.Load(p.Address() + uint16(val))
}
