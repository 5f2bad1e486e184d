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

// Package memorymap facilitates the translation of addresses to the areas of
// the Space Invaders memory map.
//
//	$0000-$1fff	ROM (invaders.h, .g, .f, .e at 2K intervals)
//	$2000-$23ff	work RAM
//	$2400-$3fff	video RAM
//	$4000-		mirror
//
// The mirror is not folded onto the lower areas. The program never relies on
// it and the CPU treats it as ordinary memory.
package memorymap
