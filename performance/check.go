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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/d100/ee/hardware/cpu"
	"github.com/d100/ee/hardware/memory"
	"github.com/d100/ee/hardware/peripherals/shifter"
)

// Machine is the part of *hardware.Machine needed to measure performance.
type Machine interface {
	PowerOn()
	Pause()
	Borrow(func(*cpu.CPU, *memory.Memory, *shifter.ShiftRegister))
}

// time given to the emulation to settle before measurement begins.
var leadTime = 2 * time.Second

// Result of a performance check.
type Result struct {
	Cycles       int
	Instructions int
	Duration     time.Duration

	// effective clock rate in MHz
	ClockRate float64

	// effective clock rate as a percentage of the target rate
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.3f MHz (%d cycles, %d instructions in %.2f seconds) %.1f%%",
		r.ClockRate, r.Cycles, r.Instructions, r.Duration.Seconds(), r.Accuracy)
}

// Check runs the machine for the duration and reports the effective clock
// rate, compared to the target rate in MHz. The machine is paused when Check
// returns.
//
// Profiles are written to the Profile directory if it is not empty.
func Check(output io.Writer, profile Profile, m Machine, target float64, duration time.Duration) error {
	var start, end cpu.Stats
	stats := func(s *cpu.Stats) {
		m.Borrow(func(mc *cpu.CPU, _ *memory.Memory, _ *shifter.ShiftRegister) {
			*s = mc.Stats()
		})
	}

	err := profile.cpu(func() error {
		m.PowerOn()
		defer m.Pause()

		time.Sleep(leadTime)
		stats(&start)
		time.Sleep(duration)
		stats(&end)

		return nil
	})
	if err != nil {
		return err
	}

	r := Result{
		Cycles:       end.Cycles - start.Cycles,
		Instructions: end.Instructions - start.Instructions,
		Duration:     duration,
	}
	if duration > 0 {
		r.ClockRate = float64(r.Cycles) / duration.Seconds() / 1000000
	}
	if target > 0 {
		r.Accuracy = r.ClockRate / target * 100
	}

	if _, err := fmt.Fprintln(output, r); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return profile.mem()
}
