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

// Package sdlwindow displays the machine's video RAM in an SDL window and
// forwards key presses to the machine's input ports.
//
// All functions in the package must be called from the main thread. The
// SdlWindow type implements the launcher's GuiCreator interface, so creation,
// servicing and destruction all happen there.
package sdlwindow
