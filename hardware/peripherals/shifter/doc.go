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

// Package shifter implements the shift register peripheral of the Space
// Invaders board.
//
// The 8080 has no barrel shifter and so the board provides one. A 16-bit
// value is built by writing two bytes to port 4, the value shifted by the
// amount written to port 2 is read from port 3. The cabinet's buttons are
// read through ports 1 and 2.
//
// The peripheral is connected to the CPU by installing the functions returned
// by Handlers() as overrides for the IN and OUT instructions.
package shifter
