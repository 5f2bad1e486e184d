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

package instructions_test

import (
	"strings"
	"testing"

	"github.com/d100/ee/hardware/cpu/instructions"
	"github.com/d100/ee/test"
)

func TestEmbeddedDescriptor(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	// every documented opcode
	test.ExpectEquality(t, tab.Len(), 244)

	defn, ok := tab.Lookup(0x3e)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, "MVI A,d8")
	test.ExpectEquality(t, defn.AddressingMode, instructions.ImmediateByte)
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Cycles, 7)
	test.ExpectFailure(t, defn.IsConditional())

	defn, ok = tab.Lookup(0xc4)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, "CNZ a16")
	test.ExpectEquality(t, defn.Cycles, 17)
	test.ExpectEquality(t, defn.NotTakenCycles, 11)
	test.ExpectSuccess(t, defn.IsConditional())

	defn, ok = tab.Lookup(0xc8)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, "RZ")
	test.ExpectEquality(t, defn.Cycles, 11)
	test.ExpectEquality(t, defn.NotTakenCycles, 5)

	defn, ok = tab.Lookup(0x76)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, "HLT")

	// undocumented opcodes are not in the table
	for _, op := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd} {
		_, ok := tab.Lookup(op)
		test.ExpectFailure(t, ok, op)
	}
}

func TestDescriptorConsistency(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	for i := 0; i < 256; i++ {
		defn, ok := tab.Lookup(uint8(i))
		if !ok {
			continue
		}
		test.ExpectEquality(t, defn.OpCode, uint8(i))

		// placeholders agree with the addressing mode
		switch defn.AddressingMode {
		case instructions.ImmediateByte:
			test.ExpectSuccess(t, strings.HasSuffix(defn.Mnemonic, "d8"), defn)
		case instructions.ImmediateWord:
			test.ExpectSuccess(t, strings.HasSuffix(defn.Mnemonic, "d16"), defn)
		case instructions.Direct:
			test.ExpectSuccess(t, strings.HasSuffix(defn.Mnemonic, "a16"), defn)
		}
	}
}

func TestLoad(t *testing.T) {
	tab, err := instructions.Load(strings.NewReader(`
# comment
0x00, NOP, IMPLIED, 1, 4
01, "LXI B,d16", IMMEDIATE_WORD, 3, 10
`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Len(), 2)

	defn, ok := tab.Lookup(0x01)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, "LXI B,d16")
	test.ExpectEquality(t, defn.String(), "01 LXI B,d16 +3bytes (10 cycles) [mode=immediate word]")
}

func TestLoadErrors(t *testing.T) {
	_, err := instructions.Load(nil)
	test.ExpectEquality(t, err, instructions.ErrNoDescriptor)

	// empty
	_, err = instructions.Load(strings.NewReader("# nothing\n"))
	test.ExpectEquality(t, err, instructions.ErrNoDescriptor)

	// invalid opcode
	_, err = instructions.Load(strings.NewReader("0xzz, NOP, IMPLIED, 1, 4\n"))
	test.ExpectFailure(t, err)

	// invalid addressing mode
	_, err = instructions.Load(strings.NewReader("0x00, NOP, RELATIVE, 1, 4\n"))
	test.ExpectFailure(t, err)

	// byte count disagrees with addressing mode
	_, err = instructions.Load(strings.NewReader("0x00, NOP, IMPLIED, 2, 4\n"))
	test.ExpectFailure(t, err)

	// wrong number of fields
	_, err = instructions.Load(strings.NewReader("0x00, NOP, IMPLIED\n"))
	test.ExpectFailure(t, err)

	// duplicate opcode
	_, err = instructions.Load(strings.NewReader("0x00, NOP, IMPLIED, 1, 4\n0x00, NOP, IMPLIED, 1, 4\n"))
	test.ExpectFailure(t, err)
}
