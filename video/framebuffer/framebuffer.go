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

// Package framebuffer converts the contents of video RAM into an image.
//
// Video RAM holds the picture one bit per pixel, eight pixels per byte with
// the least significant bit first. Each run of 32 bytes is a 256 pixel
// scanline. The monitor in the cabinet is rotated a quarter turn
// anticlockwise so that scanlines run from the bottom of the screen to the
// top.
package framebuffer

import (
	"image"
	"image/color"

	"github.com/d100/ee/hardware/memory/memorymap"
)

// Dimensions of the picture as seen by the player.
const (
	Width  = 224
	Height = 256
)

// colours used for lit and unlit pixels.
var (
	Lit   = color.Gray{Y: 0xff}
	Unlit = color.Gray{Y: 0x00}
)

// NewImage returns an image with the dimensions of the rotated picture.
func NewImage() *image.Gray {
	return image.NewGray(image.Rect(0, 0, Width, Height))
}

// Render draws the video RAM to the image. Bytes beyond the size of video
// RAM are ignored.
func Render(vram []byte, dst *image.Gray) {
	if len(vram) > memorymap.VRAMSize {
		vram = vram[:memorymap.VRAMSize]
	}

	for i, d := range vram {
		for b := 0; b < 8; b++ {
			p := i*8 + b
			pixelX := p % Height
			pixelY := p / Height

			c := Unlit
			if d&(0x01<<b) != 0 {
				c = Lit
			}
			dst.SetGray(pixelY, Height-1-pixelX, c)
		}
	}
}

// LitPixels calls the function for every lit pixel, in the coordinates of
// the rotated picture. Used by renderers that draw individual points.
func LitPixels(vram []byte, f func(x, y int)) {
	if len(vram) > memorymap.VRAMSize {
		vram = vram[:memorymap.VRAMSize]
	}

	for i, d := range vram {
		if d == 0 {
			continue
		}
		for b := 0; b < 8; b++ {
			if d&(0x01<<b) == 0 {
				continue
			}
			p := i*8 + b
			f(p/Height, Height-1-p%Height)
		}
	}
}
