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

package hardware

import (
	"context"
	"fmt"

	"github.com/d100/ee/logger"
)

// PowerOn enables the processor and starts the run loop if it is not already
// running.
func (m *Machine) PowerOn() {
	m.ctl.Lock()
	defer m.ctl.Unlock()

	if m.ended {
		return
	}

	m.CPU.Control.ProcessorEnabled.Store(true)
	m.start()
}

// Resume is the same as PowerOn. It is provided to pair with Pause().
func (m *Machine) Resume() {
	m.PowerOn()
}

// PowerOff stops the run loop and resets the CPU. Memory is not affected.
func (m *Machine) PowerOff() {
	m.ctl.Lock()
	defer m.ctl.Unlock()

	m.CPU.Control.ProcessorEnabled.Store(false)
	m.join()

	m.crit.Lock()
	defer m.crit.Unlock()
	m.CPU.Reset()
}

// Pause stops the run loop without resetting the CPU.
func (m *Machine) Pause() {
	m.ctl.Lock()
	defer m.ctl.Unlock()

	m.CPU.Control.ProcessorEnabled.Store(false)
	m.join()
}

// Running returns true if the run loop is active.
func (m *Machine) Running() bool {
	m.ctl.Lock()
	defer m.ctl.Unlock()
	return m.running()
}

// ToggleCapture flips the TraceCapture control bit. Returns the new state.
func (m *Machine) ToggleCapture() bool {
	for {
		v := m.CPU.Control.TraceCapture.Load()
		if m.CPU.Control.TraceCapture.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

// StepOnce executes a single instruction. The machine must be paused.
func (m *Machine) StepOnce() error {
	m.ctl.Lock()
	defer m.ctl.Unlock()

	if m.ended {
		return fmt.Errorf("machine: machine has ended")
	}
	if m.running() {
		return fmt.Errorf("machine: cannot step while running")
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	m.CPU.Control.ProcessorEnabled.Store(true)
	defer m.CPU.Control.ProcessorEnabled.Store(false)

	// an unknown opcode with the halt-on-unknown preference set will have
	// disabled the processor. the instruction is not executed
	pc := m.CPU.PC.Address()
	if m.CPU.Disassembler().InstructionLength(pc) == 0 && !m.CPU.Control.ProcessorEnabled.Load() {
		return fmt.Errorf("machine: unknown instruction 0x%02x at %04x", m.Mem.Read(pc), pc)
	}

	_, err := m.CPU.ExecuteInstruction()
	if err != nil {
		return fmt.Errorf("machine: %w", err)
	}

	return nil
}

// End stops the run loop and clears memory. The machine cannot be restarted.
// It is safe to call End() more than once.
func (m *Machine) End() {
	m.ctl.Lock()
	defer m.ctl.Unlock()

	if m.ended {
		return
	}
	m.ended = true

	m.CPU.Control.ProcessorEnabled.Store(false)
	m.join()

	m.crit.Lock()
	defer m.crit.Unlock()
	m.Mem.Clear()
}

// whether the run loop goroutine is active. must be called with the ctl lock
func (m *Machine) running() bool {
	if m.done == nil {
		return false
	}
	select {
	case <-m.done:
		// the run loop has ended by itself. for example, because of a HLT
		// instruction
		m.cancel()
		m.done = nil
		m.cancel = nil
		return false
	default:
	}
	return true
}

// must be called with the ctl lock
func (m *Machine) start() {
	if m.running() {
		return
	}

	var ctx context.Context
	ctx, m.cancel = context.WithCancel(context.Background())
	m.done = make(chan bool)

	go func(done chan bool) {
		defer close(done)
		err := m.CPU.Run(ctx, &m.crit)
		if err != nil {
			logger.Log(logger.Allow, "machine", err)
			m.setErr(err)
		}
	}(m.done)
}

// must be called with the ctl lock
func (m *Machine) join() {
	if m.done == nil {
		return
	}
	m.cancel()
	<-m.done
	m.done = nil
	m.cancel = nil
}
