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

// Package disassembly decodes the 8080 instruction stream. The CPU uses the
// Disassembler to find the shape of each instruction before executing it and
// the same decoding is used to produce listings for the monitor and the
// launcher's DISASM mode.
//
// Decoded instructions are formatted as the address, the opcode and the
// mnemonic, with the operand placeholders of the instruction table replaced
// by the bytes that follow the opcode:
//
//	0000 C3 JMP $18d4
//	18D4 31 LXI SP,#$2400
//	18D7 06 MVI B,#$00
//
// An opcode that has no definition causes the Halter to be called if the
// halt-on-unknown preference is set.
package disassembly
