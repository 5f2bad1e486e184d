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

package memory

import (
	"fmt"
	"strings"

	"github.com/d100/ee/hardware/memory/memorymap"
)

// Memory is the flat 64K address space shared by the CPU, the I/O handlers
// and the frame buffer.
//
// Memory does not enforce ROM protection. That is the responsibility of the
// CPU because whether a write is safe depends on the diagnostic mode.
type Memory struct {
	data [0x10000]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the byte at address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write stores data at address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Load copies data into memory starting at origin. The copy wraps around at
// the top of memory.
func (mem *Memory) Load(origin uint16, data []byte) {
	for i, b := range data {
		mem.data[origin+uint16(i)] = b
	}
}

// Slice returns a copy of length bytes starting at origin. The copy wraps
// around at the top of memory.
func (mem *Memory) Slice(origin uint16, length int) []byte {
	s := make([]byte, length)
	for i := range s {
		s[i] = mem.data[origin+uint16(i)]
	}
	return s
}

// VRAM returns a copy of the video RAM.
func (mem *Memory) VRAM() []byte {
	return mem.Slice(memorymap.OriginVRAM, memorymap.VRAMSize)
}

// Clear sets all bytes in memory to zero.
func (mem *Memory) Clear() {
	mem.data = [0x10000]uint8{}
}

// Dump returns a hex dump of length bytes starting at origin, sixteen bytes
// per line.
func (mem *Memory) Dump(origin uint16, length int) string {
	s := strings.Builder{}
	for i := 0; i < length; i++ {
		a := origin + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x ", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
	}
	return s.String()
}
