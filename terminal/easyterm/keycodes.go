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

package easyterm

// ASCII codes for the non-alphanumeric keys the monitor cares about.
const (
	KeyInterrupt      = 3  // end-of-text
	KeySuspend        = 26 // substitute
	KeyCarriageReturn = 13
	KeyLineFeed       = 10
	KeyEsc            = 27
)

// IsControl returns true if the key is a control code rather than a
// printable character.
func IsControl(k byte) bool {
	return k < 32 || k == 127
}
