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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	case VRAM:
		return "VRAM"
	case Mirror:
		return "Mirror"
	}

	return "undefined"
}

// The different memory areas of the Space Invaders board.
const (
	Undefined Area = iota
	ROM
	RAM
	VRAM
	Mirror
)

// The origin and memory top for each area of memory.
const (
	OriginROM    = uint16(0x0000)
	MemtopROM    = uint16(0x1fff)
	OriginRAM    = uint16(0x2000)
	MemtopRAM    = uint16(0x23ff)
	OriginVRAM   = uint16(0x2400)
	MemtopVRAM   = uint16(0x3fff)
	OriginMirror = uint16(0x4000)
	MemtopMirror = uint16(0xffff)
)

// VRAMSize is the number of bytes in the video RAM. Each byte holds eight
// pixels of the 256x224 bitmap.
const VRAMSize = int(MemtopVRAM-OriginVRAM) + 1

// Fixed load addresses for the four program ROMs and the optional diagnostic
// image.
const (
	OriginROMH = uint16(0x0000)
	OriginROMG = uint16(0x0800)
	OriginROMF = uint16(0x1000)
	OriginROME = uint16(0x1800)
	OriginDiag = uint16(0x0100)
)

// MapAddress returns the Area the address falls within. Addresses are never
// translated because the memory is flat. The mirror area is plain memory.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopROM:
		return ROM
	case address <= MemtopRAM:
		return RAM
	case address <= MemtopVRAM:
		return VRAM
	}
	return Mirror
}

// IsROM returns true if address is in the region occupied by the program
// ROMs.
func IsROM(address uint16) bool {
	return address <= MemtopROM
}
