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

import (
	"strings"
)

// Flags is the special purpose register that stores the flags of the 8080.
// InterruptEnable is not part of the PSW byte but lives here because it is
// set and cleared by instructions in the same way as the other flags.
type Flags struct {
	Sign            bool
	Zero            bool
	AuxCarry        bool
	Parity          bool
	Carry           bool
	InterruptEnable bool
}

// NewFlags is the preferred method of initialisation for the flags register.
func NewFlags() Flags {
	return Flags{}
}

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "F"
}

func (fl Flags) String() string {
	s := strings.Builder{}

	if fl.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if fl.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if fl.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}
	if fl.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}
	if fl.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if fl.InterruptEnable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}

	return s.String()
}

// Reset all flags to false.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// SetZSP sets the zero, sign and parity flags according to the value.
func (fl *Flags) SetZSP(v uint8) {
	fl.Zero = v == 0
	fl.Sign = v&0x80 == 0x80
	fl.Parity = EvenParity(v)
}

// Value converts the Flags struct into the PSW byte suitable for pushing onto
// the stack.
func (fl Flags) Value() uint8 {
	var v uint8

	if fl.Sign {
		v |= 0x80
	}
	if fl.Zero {
		v |= 0x40
	}
	if fl.AuxCarry {
		v |= 0x10
	}
	if fl.Parity {
		v |= 0x04
	}
	if fl.Carry {
		v |= 0x01
	}

	// bit 1 of the PSW is always set. bits 3 and 5 are always clear
	v |= 0x02

	return v
}

// FromValue converts a PSW byte (taken from the stack) to the Flags struct
// receiver. InterruptEnable is not affected.
func (fl *Flags) FromValue(v uint8) {
	fl.Sign = v&0x80 == 0x80
	fl.Zero = v&0x40 == 0x40
	fl.AuxCarry = v&0x10 == 0x10
	fl.Parity = v&0x04 == 0x04
	fl.Carry = v&0x01 == 0x01
}
