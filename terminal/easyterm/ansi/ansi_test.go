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

package ansi_test

import (
	"testing"

	"github.com/d100/ee/terminal/easyterm/ansi"
	"github.com/d100/ee/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("Green", "blue", "bold")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32;44;1m")

	s, err = ansi.ColorBuild("", "", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("mauve", "", "")
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "", "blink")
	test.ExpectFailure(t, err)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["white"], "\033[37m")
	test.ExpectEquality(t, ansi.DimPens["red"], "\033[31;2m")
	test.ExpectEquality(t, ansi.CursorUp(0), "")
	test.ExpectEquality(t, ansi.CursorUp(3), "\033[3A")
}
