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

package sdlwindow

import (
	"github.com/d100/ee/hardware/peripherals/shifter"
	"github.com/veandco/go-sdl2/sdl"
)

// cabinet controls indexed by the SDL keycode.
var cabinet = map[sdl.Keycode]shifter.Input{
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

// Action is a key that controls the emulation rather than the cabinet.
type Action int

// List of valid Action values.
const (
	NoAction Action = iota
	ActionPause
	ActionCapture
	ActionQuit
)

var actions = map[sdl.Keycode]Action{
	sdl.K_p:      ActionPause,
	sdl.K_t:      ActionCapture,
	sdl.K_ESCAPE: ActionQuit,
}

// Lookup the meaning of the key. If the first boolean is true the key is a
// cabinet control. Otherwise the Action value applies, which may be
// NoAction.
func Lookup(key sdl.Keycode) (shifter.Input, bool, Action) {
	if i, ok := cabinet[key]; ok {
		return i, true, NoAction
	}
	return 0, false, actions[key]
}
