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

package cpu

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/d100/ee/hardware/cpu/execution"
	"github.com/d100/ee/logger"
	"github.com/d100/ee/performance/limiter"
)

// number of cycles skipped for an opcode that has no definition when the
// halt-on-unknown preference is not set
const unknownCycles = 4

// ExecuteInstruction decodes and executes the instruction at the program
// counter. Interrupts are not considered. Returns the number of cycles taken.
func (mc *CPU) ExecuteInstruction() (int, error) {
	if !mc.Control.ProcessorEnabled.Load() {
		return 0, ErrDisabled
	}

	ins, ok := mc.dsm.Decode(mc.PC.Address())

	// the disassembler may have halted the processor
	if !mc.Control.ProcessorEnabled.Load() {
		return 0, ErrDisabled
	}

	var cycles int

	h := mc.overrides[ins.OpCode]
	if h == nil {
		h = mc.handlers[ins.OpCode]
	}

	if !ok || h == nil {
		if ok {
			logger.Logf(logger.Allow, "cpu", "no handler for instruction 0x%02x at %04x", ins.OpCode, ins.Address)
		}
		ins.Text = fmt.Sprintf("%04X %02X DB $%02x", ins.Address, ins.OpCode, ins.OpCode)
		mc.PC.Add(1)
		cycles = unknownCycles
	} else {
		cycles = h(mc, ins)
	}

	if mc.Control.TraceCapture.Load() {
		mc.history.Append(execution.Entry{
			Mnemonic: ins.Text,
			PC:       mc.PC.Address(),
			SP:       mc.SP.Address(),
			A:        mc.A.Value(),
			B:        mc.B.Value(),
			C:        mc.C.Value(),
			D:        mc.D.Value(),
			E:        mc.E.Value(),
			H:        mc.H.Value(),
			L:        mc.L.Value(),
			Flags:    mc.Flags,
		})
	}

	mc.stats.update(cycles)

	return cycles, nil
}

// Step is a single iteration of the run loop. If an interrupt is due and
// interrupts are enabled then the interrupt is delivered instead of an
// instruction being executed. An interrupt that is due while interrupts are
// disabled remains pending.
func (mc *CPU) Step() (int, error) {
	if !mc.Control.ProcessorEnabled.Load() {
		return 0, ErrDisabled
	}

	now := mc.clock.Now()
	if !mc.timing.started {
		mc.timing.start(now)
	}

	if mc.Flags.InterruptEnable && now > mc.timing.due {
		mc.Interrupt(mc.timing.deliver(now))
		mc.stats.update(interruptCycles)
		return interruptCycles, nil
	}

	return mc.ExecuteInstruction()
}

// rate at which the pacing limiter ticks.
const pacingRate = 500

// Run the CPU until the ProcessorEnabled control bit is cleared or the
// context is cancelled. The lock is held for each iteration of the loop.
//
// Interrupt timing starts when Run() is called.
func (mc *CPU) Run(ctx context.Context, lock sync.Locker) error {
	var lim *limiter.Limiter
	var cyclesPerTick int
	var cycles int

	if mc.prefs.Pacing.Get().(bool) {
		lim = limiter.NewLimiter(pacingRate)
		defer lim.Close()
		cyclesPerTick = int(mc.prefs.ClockRate.Get().(float64) * 1000000 / pacingRate)
		if cyclesPerTick < 1 {
			cyclesPerTick = 1
		}
	}

	lock.Lock()
	mc.timing = interruptTiming{}
	lock.Unlock()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		lock.Lock()
		n, err := mc.Step()
		lock.Unlock()

		if err != nil {
			if errors.Is(err, ErrDisabled) {
				return nil
			}
			return err
		}

		if lim != nil {
			cycles += n
			for cycles >= cyclesPerTick {
				lim.Wait()
				cycles -= cyclesPerTick
			}
		}
	}
}
