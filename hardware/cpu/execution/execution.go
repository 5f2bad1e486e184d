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

package execution

import (
	"fmt"
	"strings"

	"github.com/d100/ee/hardware/cpu/registers"
)

// Entry is a snapshot of the CPU taken after an instruction has been
// retired.
type Entry struct {
	// the disassembled text of the instruction
	Mnemonic string

	// the program counter and stack pointer after execution. the address of
	// the instruction itself is part of the mnemonic
	PC uint16
	SP uint16

	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	Flags registers.Flags
}

func (e Entry) String() string {
	return fmt.Sprintf("%-24s A=%02x B=%02x C=%02x D=%02x E=%02x H=%02x L=%02x SP=%04x %s",
		e.Mnemonic, e.A, e.B, e.C, e.D, e.E, e.H, e.L, e.SP, e.Flags)
}

// History is the list of retired instructions. Entries are only ever
// appended. There is no limit to the number of entries, the history is only
// populated while trace capture is enabled.
type History struct {
	entries []Entry
}

// NewHistory is the preferred method of initialisation for the History type.
func NewHistory() *History {
	return &History{
		entries: make([]Entry, 0, 1024),
	}
}

// Append entry to the history.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Len returns the number of entries in the history.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear all entries from the history.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Entries returns a copy of every entry in the history.
func (h *History) Entries() []Entry {
	c := make([]Entry, len(h.entries))
	copy(c, h.entries)
	return c
}

// Tail returns a copy of the most recent n entries.
func (h *History) Tail(n int) []Entry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	if n <= 0 {
		return []Entry{}
	}
	c := make([]Entry, n)
	copy(c, h.entries[len(h.entries)-n:])
	return c
}

func (h *History) String() string {
	s := strings.Builder{}
	for _, e := range h.entries {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}
