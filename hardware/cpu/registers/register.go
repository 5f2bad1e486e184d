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
	"fmt"
	"math/bits"
)

// Register is an 8-bit register of the 8080. The methods that perform
// arithmetic return the carry and auxiliary carry that resulted from the
// operation but do not alter the flags themselves. That is the job of the
// CPU.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsEvenParity returns true if the number of set bits in the register is
// even.
func (r Register) IsEvenParity() bool {
	return EvenParity(r.value)
}

// EvenParity returns true if the number of set bits in v is even.
func EvenParity(v uint8) bool {
	return bits.OnesCount8(v)&0x01 == 0
}

// Add value to register, with carry. The carry result is true if the
// unmasked result is greater than 255. The auxiliary carry is the carry out
// of bit 3.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, aux bool) {
	var c int
	if carry {
		c = 1
	}

	result := int(r.value) + int(val) + c
	aux = int(r.value&0x0f)+int(val&0x0f)+c > 0x0f
	r.value = uint8(result)

	return result > 0xff, aux
}

// Subtract value from register, with borrow. The carry result is true if the
// unmasked result is negative. The auxiliary carry follows the 8080, which
// subtracts by adding the two's complement, and so is the carry out of bit 3
// of that addition.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, aux bool) {
	var b int
	if borrow {
		b = 1
	}

	result := int(r.value) - int(val) - b
	aux = int(r.value&0x0f)+int(^val&0x0f)+(1-b) > 0x0f
	r.value = uint8(result)

	return result < 0, aux
}

// Increment register by one, wrapping at 255. Returns the auxiliary carry.
func (r *Register) Increment() (aux bool) {
	aux = r.value&0x0f == 0x0f
	r.value++
	return aux
}

// Decrement register by one, wrapping at zero. Returns the auxiliary carry,
// which is set unless the low nibble was zero before the decrement.
func (r *Register) Decrement() (aux bool) {
	aux = r.value&0x0f != 0x00
	r.value--
	return aux
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR (exclusive or) value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR (non-exclusive or) value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// Complement inverts every bit in the register.
func (r *Register) Complement() {
	r.value = ^r.value
}

// RLC rotates register 1 bit to the left. Bit 7 moves to bit 0 and is
// returned as the new carry.
func (r *Register) RLC() bool {
	rcarry := r.IsNegative()
	r.value = bits.RotateLeft8(r.value, 1)
	return rcarry
}

// RRC rotates register 1 bit to the right. Bit 0 moves to bit 7 and is
// returned as the new carry.
func (r *Register) RRC() bool {
	rcarry := r.value&0x01 == 0x01
	r.value = bits.RotateLeft8(r.value, -1)
	return rcarry
}

// RAL rotates register 1 bit to the left through the carry. Returns new
// carry status.
func (r *Register) RAL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RAR rotates register 1 bit to the right through the carry. Returns new
// carry status.
func (r *Register) RAR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
