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

// Package monitor is a single key terminal interface to a running machine.
// Each key is a complete command:
//
//	p	pause or resume the machine
//	s	execute a single instruction while paused
//	t	toggle trace capture
//	r	print the registers and the shift register
//	h	print the most recent trace entries
//	l	print the most recent log entries
//	d	list the instructions at the program counter
//	q	quit
//
// The monitor does not put the terminal into cbreak mode itself. That is the
// job of the caller, usually with the easyterm package.
package monitor
