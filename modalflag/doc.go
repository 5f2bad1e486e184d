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

// Package modalflag is a wrapper for the flag package in the standard library.
// It handles program modes, where the first argument after the flags selects
// a different mode of operation with its own set of flags.
//
// Arguments are given with NewArgs() and parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//
// After a successful Parse() the selected mode is returned by Mode(). Flags
// for that mode are added after a call to NewMode() and the remaining
// arguments are parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		from := md.AddAddress("from", 0x0000, "first address to list")
//		p, err := md.Parse()
//		...
//	}
//
// Mode names are case insensitive. The first sub-mode added is the default,
// selected when the argument does not name a mode.
package modalflag
