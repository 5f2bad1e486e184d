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

import "time"

// Clock is the source of time for the interrupt generator. The default clock
// is monotonic and measures time since the CPU was created.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

func newMonotonicClock() *monotonicClock {
	return &monotonicClock{start: time.Now()}
}

func (clk *monotonicClock) Now() time.Duration {
	return time.Since(clk.start)
}

// SetClock replaces the clock used for interrupt timing. A nil value restores
// the default clock.
func (mc *CPU) SetClock(clk Clock) {
	if clk == nil {
		clk = newMonotonicClock()
	}
	mc.clock = clk
	mc.timing = interruptTiming{}
}

// the display generates an interrupt at the middle of the screen (vector 1)
// and at the start of vertical blank (vector 2). the first interrupt is
// delayed by one frame.
const (
	firstInterrupt    = 16 * time.Millisecond
	interruptInterval = 8 * time.Millisecond
	interruptCycles   = 11
)

type interruptTiming struct {
	started bool
	due     time.Duration
	vector  int
}

func (tm *interruptTiming) start(now time.Duration) {
	tm.started = true
	tm.due = now + firstInterrupt
	tm.vector = 1
}

// returns the vector to be delivered and schedules the next interrupt.
func (tm *interruptTiming) deliver(now time.Duration) int {
	v := tm.vector
	if tm.vector == 1 {
		tm.vector = 2
	} else {
		tm.vector = 1
	}
	tm.due = now + interruptInterval
	return v
}
