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

// Package cpu emulates the Intel 8080 microprocessor.
//
// Each opcode is implemented by a Handler. The handlers are held in a table
// indexed by opcode and a second table of overrides allows a machine to
// replace the behaviour of an instruction. The Space Invaders machine, for
// example, overrides the IN and OUT instructions to connect the shift
// register peripheral.
//
// ExecuteInstruction() decodes and executes a single instruction. Step() is
// the same but will deliver an interrupt instead if one is due. The Run()
// function calls Step() repeatedly until the processor is disabled or the
// context is cancelled:
//
//	var lock sync.Mutex
//	mc.Control.ProcessorEnabled.Store(true)
//	err := mc.Run(ctx, &lock)
//
// The lock is held for each iteration of the loop. Other goroutines that want
// to inspect the state of the CPU or the memory should hold the same lock.
//
// Interrupts are generated by wall clock time. The first interrupt is due
// 16ms after the loop starts and then every 8ms after that, alternating
// between RST 1 and RST 2. An interrupt that is due while interrupts are
// disabled remains pending until interrupts are enabled.
//
// Writes to the ROM area of memory are refused unless the Diagnostic control
// bit is set. A refused write disables the processor.
package cpu
