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

// Package registers implements the registers of the 8080. The 8-bit
// Register type provides the arithmetic and logical operations that the CPU
// requires. The operations return carry information but do not alter the
// Flags, which is the responsibility of the CPU.
//
// Register pairs are represented by the Pair type, which refers to two
// Register instances. The first register in the pair is the high byte.
//
// The Control type holds the emulator control bits. These may be changed
// concurrently with the running emulation.
package registers
