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
	"fmt"
	"io"

	"github.com/d100/ee/assert"
	"github.com/d100/ee/hardware/cpu"
	"github.com/d100/ee/hardware/memory"
	"github.com/d100/ee/hardware/peripherals/shifter"
	"github.com/d100/ee/logger"
	"github.com/d100/ee/performance/limiter"
	"github.com/d100/ee/version"
	"github.com/d100/ee/video/framebuffer"
	"github.com/veandco/go-sdl2/sdl"
)

// Machine is the set of control signals and observers used by the window.
// Satisfied by *hardware.Machine.
type Machine interface {
	Pause()
	Resume()
	Running() bool
	ToggleCapture() bool
	Input(i shifter.Input, pressed bool)
	Borrow(func(*cpu.CPU, *memory.Memory, *shifter.ShiftRegister))
}

// the rate at which the window is redrawn.
const refreshRate = 60

// SdlWindow is a window showing the contents of video RAM. The picture is
// drawn as individual points, scaled by the renderer.
//
// MUST ONLY be used from the main thread.
type SdlWindow struct {
	machine Machine

	window   *sdl.Window
	renderer *sdl.Renderer

	// regulates how often the window is redrawn
	lim *limiter.Limiter

	// lit pixels for the current frame. reused between frames
	points []sdl.Point

	// closed when the window has been closed or the quit key pressed
	quit   chan bool
	closed bool

	// the goroutine that created the window. SDL functions must be called
	// from this goroutine only
	owner assert.Owner
}

// NewSdlWindow is the preferred method of initialisation for the SdlWindow
// type. The window is the size of the rotated picture multiplied by scale.
func NewSdlWindow(machine Machine, scale float32) (*SdlWindow, error) {
	if scale < 1 {
		scale = 1
	}

	wnd := &SdlWindow{
		machine: machine,
		owner:   assert.NewOwner(),
		quit:    make(chan bool),
		points:  make([]sdl.Point, 0, framebuffer.Width*framebuffer.Height),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	wnd.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(framebuffer.Width)*scale), int32(float32(framebuffer.Height)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	wnd.renderer, err = sdl.CreateRenderer(wnd.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = wnd.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	err = wnd.renderer.SetScale(scale, scale)
	if err != nil {
		wnd.destroy()
		return nil, fmt.Errorf("sdlwindow: %w", err)
	}

	wnd.lim = limiter.NewLimiter(refreshRate)

	logger.Logf(logger.Allow, "sdlwindow", "window created (scale %.1f)", scale)

	return wnd, nil
}

// Quit returns a channel that is closed when the user asks to quit.
func (wnd *SdlWindow) Quit() <-chan bool {
	return wnd.quit
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (wnd *SdlWindow) Destroy(output io.Writer) {
	wnd.lim.Close()
	wnd.destroy()
}

func (wnd *SdlWindow) destroy() {
	if err := wnd.renderer.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlwindow", err)
	}
	if err := wnd.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlwindow", err)
	}
	sdl.Quit()
}

// Service implements the GuiCreator interface. Pending events are handled
// and the window redrawn. Blocks for no longer than one refresh period.
//
// MUST ONLY be called from the main thread.
func (wnd *SdlWindow) Service() {
	if !wnd.owner.IsOwner() {
		logger.Log(logger.Allow, "sdlwindow", "service called from wrong goroutine")
		return
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			wnd.requestQuit()

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			wnd.key(ev.Keysym.Sym, ev.Type == sdl.KEYDOWN)
		}
	}

	wnd.lim.Wait()

	if err := wnd.draw(); err != nil {
		logger.Log(logger.Allow, "sdlwindow", err)
	}
}

func (wnd *SdlWindow) requestQuit() {
	if wnd.closed {
		return
	}
	wnd.closed = true
	close(wnd.quit)
}

func (wnd *SdlWindow) key(key sdl.Keycode, down bool) {
	i, ok, act := Lookup(key)
	if ok {
		wnd.machine.Input(i, down)
		return
	}

	// actions happen on key release only
	if down {
		return
	}

	switch act {
	case ActionPause:
		if wnd.machine.Running() {
			wnd.machine.Pause()
		} else {
			wnd.machine.Resume()
		}
	case ActionCapture:
		logger.Logf(logger.Allow, "sdlwindow", "capture: %v", wnd.machine.ToggleCapture())
	case ActionQuit:
		wnd.requestQuit()
	}
}

func (wnd *SdlWindow) draw() error {
	wnd.points = wnd.points[:0]
	wnd.machine.Borrow(func(_ *cpu.CPU, mem *memory.Memory, _ *shifter.ShiftRegister) {
		framebuffer.LitPixels(mem.VRAM(), func(x, y int) {
			wnd.points = append(wnd.points, sdl.Point{X: int32(x), Y: int32(y)})
		})
	})

	if err := wnd.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := wnd.renderer.Clear(); err != nil {
		return err
	}

	if len(wnd.points) > 0 {
		if err := wnd.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
			return err
		}
		if err := wnd.renderer.DrawPoints(wnd.points); err != nil {
			return err
		}
	}

	wnd.renderer.Present()

	return nil
}
