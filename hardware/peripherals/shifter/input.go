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

// Input is a button or switch on the cabinet.
type Input int

// List of valid Input values.
const (
	Coin Input = iota
	P1Start
	P2Start
	P1Fire
	P1Left
	P1Right
	P2Fire
	P2Left
	P2Right
	Tilt
)

func (i Input) String() string {
	switch i {
	case Coin:
		return "coin"
	case P1Start:
		return "p1 start"
	case P2Start:
		return "p2 start"
	case P1Fire:
		return "p1 fire"
	case P1Left:
		return "p1 left"
	case P1Right:
		return "p1 right"
	case P2Fire:
		return "p2 fire"
	case P2Left:
		return "p2 left"
	case P2Right:
		return "p2 right"
	case Tilt:
		return "tilt"
	}
	return "unknown input"
}

// the input port and bit for each Input
type inputBit struct {
	port int
	mask uint8
}

var inputBits = map[Input]inputBit{
	Coin:    {port: 1, mask: 0x01},
	P2Start: {port: 1, mask: 0x02},
	P1Start: {port: 1, mask: 0x04},
	P1Fire:  {port: 1, mask: 0x10},
	P1Left:  {port: 1, mask: 0x20},
	P1Right: {port: 1, mask: 0x40},
	Tilt:    {port: 2, mask: 0x04},
	P2Fire:  {port: 2, mask: 0x10},
	P2Left:  {port: 2, mask: 0x20},
	P2Right: {port: 2, mask: 0x40},
}
