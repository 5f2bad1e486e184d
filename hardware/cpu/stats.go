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

import "fmt"

// weight given to the most recent instruction in the rolling average.
const rollingAlpha = 1.0 / 25

// Stats summarises the work done by the CPU since the last reset.
type Stats struct {
	// rolling average of cycles per instruction
	AverageCycles float64

	Instructions int
	Cycles       int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d instructions, %d cycles (avg %.2f)", s.Instructions, s.Cycles, s.AverageCycles)
}

func (s *Stats) update(cycles int) {
	s.Instructions++
	s.Cycles += cycles
	s.AverageCycles = rollingAlpha*float64(cycles) + (1.0-rollingAlpha)*s.AverageCycles
}

// Stats returns a copy of the current statistics.
func (mc *CPU) Stats() Stats {
	return mc.stats
}
