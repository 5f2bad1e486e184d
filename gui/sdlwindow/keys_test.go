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

package sdlwindow_test

import (
	"testing"

	"github.com/d100/ee/gui/sdlwindow"
	"github.com/d100/ee/hardware/peripherals/shifter"
	"github.com/d100/ee/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestCabinetKeys(t *testing.T) {
	keys := map[sdl.Keycode]shifter.Input{
		sdl.K_c:     shifter.Coin,
		sdl.K_1:     shifter.P1Start,
		sdl.K_2:     shifter.P2Start,
		sdl.K_SPACE: shifter.P1Fire,
		sdl.K_LEFT:  shifter.P1Left,
		sdl.K_RIGHT: shifter.P1Right,
		sdl.K_w:     shifter.P2Fire,
		sdl.K_a:     shifter.P2Left,
		sdl.K_d:     shifter.P2Right,
	}

	for k, v := range keys {
		i, ok, act := sdlwindow.Lookup(k)
		test.ExpectSuccess(t, ok, k)
		test.ExpectEquality(t, i, v)
		test.ExpectEquality(t, act, sdlwindow.NoAction)
	}
}

func TestActionKeys(t *testing.T) {
	_, ok, act := sdlwindow.Lookup(sdl.K_p)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, act, sdlwindow.ActionPause)

	_, _, act = sdlwindow.Lookup(sdl.K_t)
	test.ExpectEquality(t, act, sdlwindow.ActionCapture)

	_, _, act = sdlwindow.Lookup(sdl.K_ESCAPE)
	test.ExpectEquality(t, act, sdlwindow.ActionQuit)

	_, ok, act = sdlwindow.Lookup(sdl.K_z)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, act, sdlwindow.NoAction)
}
