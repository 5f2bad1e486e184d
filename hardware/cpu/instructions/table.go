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

package instructions

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed instructions.csv
var descriptor []byte

// ErrNoDescriptor is returned when there are no instruction definitions to
// load.
var ErrNoDescriptor = errors.New("instructions: no definitions in descriptor")

// Table of instruction definitions, indexed by opcode. Immutable once loaded.
type Table struct {
	defs [256]*Definition
	n    int
}

// NewTable returns the instruction table for the 8080 as defined by the
// embedded descriptor.
func NewTable() (*Table, error) {
	return Load(bytes.NewReader(descriptor))
}

// Load parses the CSV descriptor from the reader. Each record is of the form:
//
//	opcode, mnemonic, addressing mode, bytes, cycles[, not taken cycles]
//
// Lines beginning with # are comments. Mnemonics containing a comma must be
// quoted.
func Load(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, ErrNoDescriptor
	}

	csvr := csv.NewReader(r)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true

	// the not taken cycles field is optional
	csvr.FieldsPerRecord = -1

	tab := &Table{}

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("instructions: %w", err)
		}

		defn, err := parseRecord(rec)
		if err != nil {
			return nil, err
		}

		if tab.defs[defn.OpCode] != nil {
			return nil, fmt.Errorf("instructions: duplicate definition for 0x%02x", defn.OpCode)
		}
		tab.defs[defn.OpCode] = defn
		tab.n++
	}

	if tab.n == 0 {
		return nil, ErrNoDescriptor
	}

	return tab, nil
}

func parseRecord(rec []string) (*Definition, error) {
	if !(len(rec) == 5 || len(rec) == 6) {
		return nil, fmt.Errorf("instructions: wrong number of fields in definition (%s)", strings.Join(rec, ","))
	}

	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}

	defn := &Definition{}

	// field: opcode
	opcode := strings.TrimPrefix(strings.ToLower(rec[0]), "0x")
	n, err := strconv.ParseUint(opcode, 16, 8)
	if err != nil {
		return nil, fmt.Errorf("instructions: invalid opcode (0x%s)", opcode)
	}
	defn.OpCode = uint8(n)

	// field: mnemonic
	if rec[1] == "" {
		return nil, fmt.Errorf("instructions: empty mnemonic for 0x%s", opcode)
	}
	defn.Mnemonic = rec[1]

	// field: addressing mode
	switch strings.ToUpper(rec[2]) {
	case "IMPLIED":
		defn.AddressingMode = Implied
	case "REGISTER":
		defn.AddressingMode = Register
	case "IMMEDIATE_BYTE":
		defn.AddressingMode = ImmediateByte
	case "IMMEDIATE_WORD":
		defn.AddressingMode = ImmediateWord
	case "DIRECT":
		defn.AddressingMode = Direct
	default:
		return nil, fmt.Errorf("instructions: invalid addressing mode for 0x%s (%s)", opcode, rec[2])
	}

	// field: bytes. must agree with the addressing mode
	defn.Bytes, err = strconv.Atoi(rec[3])
	if err != nil {
		return nil, fmt.Errorf("instructions: invalid byte count for 0x%s (%s)", opcode, rec[3])
	}
	if defn.Bytes != modeBytes[defn.AddressingMode] {
		return nil, fmt.Errorf("instructions: byte count for 0x%s does not match %s addressing (%d)", opcode, defn.AddressingMode, defn.Bytes)
	}

	// field: cycles
	defn.Cycles, err = strconv.Atoi(rec[4])
	if err != nil || defn.Cycles <= 0 {
		return nil, fmt.Errorf("instructions: invalid cycle count for 0x%s (%s)", opcode, rec[4])
	}

	// field: not taken cycles (optional)
	if len(rec) == 6 {
		defn.NotTakenCycles, err = strconv.Atoi(rec[5])
		if err != nil || defn.NotTakenCycles <= 0 {
			return nil, fmt.Errorf("instructions: invalid not taken cycle count for 0x%s (%s)", opcode, rec[5])
		}
	}

	return defn, nil
}

// Lookup returns the definition for the opcode. The boolean is false if the
// opcode is not defined.
func (tab *Table) Lookup(opcode uint8) (Definition, bool) {
	d := tab.defs[opcode]
	if d == nil {
		return Definition{}, false
	}
	return *d, true
}

// Len returns the number of definitions in the table.
func (tab *Table) Len() int {
	return tab.n
}
