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

// Package instructions defines the table of 8080 instruction definitions. The
// table is parsed from a CSV descriptor embedded in the binary.
//
// Each Definition describes the shape of an instruction: the mnemonic (with
// placeholders for operands), addressing mode, byte length and cycle count.
// The semantics of each instruction are implemented in the cpu package.
package instructions
