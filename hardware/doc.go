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

// Package hardware is the base package for the Space Invaders emulation. The
// Machine type owns the memory, the CPU and the shift register and is
// responsible for loading the ROM images and for connecting the shift
// register to the CPU.
//
// The Machine runs the CPU in its own goroutine. The goroutine is controlled
// with PowerOn(), PowerOff(), Pause() and Resume(). StepOnce() executes a
// single instruction while the machine is paused and End() stops the machine
// permanently.
//
// Other goroutines must not access the CPU or the memory directly while the
// machine is running. The Borrow() function should be used instead:
//
//	m.Borrow(func(mc *cpu.CPU, mem *memory.Memory, sr *shifter.ShiftRegister) {
//		vram := mem.VRAM()
//	})
package hardware
