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

package disassembly

import (
	"fmt"
	"io"
)

// Listing returns n decoded instructions starting at address. Unknown opcodes
// do not halt anything and are listed as a single data byte.
func (dsm *Disassembler) Listing(address uint16, n int) []Instruction {
	l := make([]Instruction, 0, n)

	for i := 0; i < n; i++ {
		opcode := dsm.mem.Read(address)

		defn, ok := dsm.tab.Lookup(opcode)
		if !ok {
			l = append(l, Instruction{
				Address: address,
				OpCode:  opcode,
				Text:    fmt.Sprintf("%04X %02X DB $%02x", address, opcode, opcode),
				Length:  1,
			})
			address++
			continue
		}

		l = append(l, Instruction{
			Address: address,
			OpCode:  opcode,
			Text:    fmt.Sprintf("%04X %02X %s", address, opcode, dsm.operands(address, defn)),
			Length:  defn.Bytes,
			Cycles:  defn.Cycles,
			Defn:    defn,
		})
		address += uint16(defn.Bytes)
	}

	return l
}

// Write a listing of n instructions starting at address to io.Writer.
func (dsm *Disassembler) Write(output io.Writer, address uint16, n int) error {
	for _, ins := range dsm.Listing(address, n) {
		if _, err := io.WriteString(output, ins.Text); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
