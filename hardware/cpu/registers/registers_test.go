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

package registers_test

import (
	"testing"

	"github.com/d100/ee/hardware/cpu/registers"
	"github.com/d100/ee/test"
)

func TestRegisterAdd(t *testing.T) {
	r := registers.NewRegister(0xf0, "A")
	carry, aux := r.Add(0x20, false)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, aux)

	r.Load(0x0f)
	carry, aux = r.Add(0x00, true)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, aux)

	r.Load(0xff)
	carry, _ = r.Add(0x00, true)
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, carry)
}

func TestRegisterSubtract(t *testing.T) {
	r := registers.NewRegister(0x00, "A")
	borrow, _ := r.Subtract(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectSuccess(t, borrow)
	test.ExpectSuccess(t, r.IsNegative())

	r.Load(0x3e)
	borrow, aux := r.Subtract(0x3e, false)
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, borrow)
	test.ExpectSuccess(t, aux)

	r.Load(0x10)
	borrow, aux = r.Subtract(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x0f))
	test.ExpectFailure(t, borrow)
	test.ExpectFailure(t, aux)

	r.Load(0x05)
	borrow, _ = r.Subtract(0x05, true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectSuccess(t, borrow)
}

func TestIncrementDecrement(t *testing.T) {
	r := registers.NewRegister(0xff, "B")
	aux := r.Increment()
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, aux)

	aux = r.Decrement()
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectFailure(t, aux)

	aux = r.Decrement()
	test.ExpectEquality(t, r.Value(), uint8(0xfe))
	test.ExpectSuccess(t, aux)
}

func TestParity(t *testing.T) {
	test.ExpectSuccess(t, registers.EvenParity(0x00))
	test.ExpectFailure(t, registers.EvenParity(0x01))
	test.ExpectSuccess(t, registers.EvenParity(0x03))
	test.ExpectFailure(t, registers.EvenParity(0x07))
	test.ExpectSuccess(t, registers.EvenParity(0xff))

	r := registers.NewRegister(0x55, "A")
	test.ExpectSuccess(t, r.IsEvenParity())
}

func TestRotate(t *testing.T) {
	r := registers.NewRegister(0x81, "A")
	test.ExpectSuccess(t, r.RLC())
	test.ExpectEquality(t, r.Value(), uint8(0x03))

	r.Load(0x81)
	test.ExpectSuccess(t, r.RRC())
	test.ExpectEquality(t, r.Value(), uint8(0xc0))

	r.Load(0x80)
	test.ExpectSuccess(t, r.RAL(false))
	test.ExpectEquality(t, r.Value(), uint8(0x00))

	r.Load(0x01)
	test.ExpectSuccess(t, r.RAR(true))
	test.ExpectEquality(t, r.Value(), uint8(0x80))
}

func TestLogical(t *testing.T) {
	r := registers.NewRegister(0xf0, "A")
	r.AND(0x3c)
	test.ExpectEquality(t, r.Value(), uint8(0x30))
	r.OR(0x03)
	test.ExpectEquality(t, r.Value(), uint8(0x33))
	r.XOR(0xff)
	test.ExpectEquality(t, r.Value(), uint8(0xcc))
	r.Complement()
	test.ExpectEquality(t, r.Value(), uint8(0x33))
	test.ExpectEquality(t, r.String(), "A=0x33")
}

func TestPointers(t *testing.T) {
	pc := registers.NewProgramCounter(0xffff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))
	test.ExpectEquality(t, pc.String(), "0x0000")

	sp := registers.NewStackPointer(0x0001)
	sp.Push()
	test.ExpectEquality(t, sp.Address(), uint16(0xffff))
	sp.Pop()
	test.ExpectEquality(t, sp.Address(), uint16(0x0001))
	sp.Add(-2)
	test.ExpectEquality(t, sp.Address(), uint16(0xffff))
}

func TestPair(t *testing.T) {
	h := registers.NewRegister(0x12, "H")
	l := registers.NewRegister(0x34, "L")
	hl := registers.NewPair(&h, &l)

	test.ExpectEquality(t, hl.Label(), "HL")
	test.ExpectEquality(t, hl.Address(), uint16(0x1234))

	hl.Load(0xabcd)
	test.ExpectEquality(t, h.Value(), uint8(0xab))
	test.ExpectEquality(t, l.Value(), uint8(0xcd))

	hl.Load(0xffff)
	hl.Add(1)
	test.ExpectEquality(t, hl.Address(), uint16(0x0000))
	hl.Add(-1)
	test.ExpectEquality(t, hl.Address(), uint16(0xffff))
}

func TestFlags(t *testing.T) {
	fl := registers.NewFlags()
	test.ExpectEquality(t, fl.String(), "szapci")
	test.ExpectEquality(t, fl.Value(), uint8(0x02))

	fl.SetZSP(0x00)
	test.ExpectEquality(t, fl.String(), "sZaPci")

	fl.FromValue(0xd7)
	test.ExpectSuccess(t, fl.Sign)
	test.ExpectSuccess(t, fl.Zero)
	test.ExpectSuccess(t, fl.AuxCarry)
	test.ExpectSuccess(t, fl.Parity)
	test.ExpectSuccess(t, fl.Carry)
	test.ExpectEquality(t, fl.Value(), uint8(0xd7))

	fl.InterruptEnable = true
	fl.FromValue(0x02)
	test.ExpectEquality(t, fl.String(), "szapcI")

	fl.Reset()
	test.ExpectFailure(t, fl.InterruptEnable)
}

func TestControl(t *testing.T) {
	var ctl registers.Control
	test.ExpectEquality(t, ctl.String(), "disabled")
	ctl.ProcessorEnabled.Store(true)
	ctl.TraceCapture.Store(true)
	test.ExpectEquality(t, ctl.String(), "enabled capture")
}
