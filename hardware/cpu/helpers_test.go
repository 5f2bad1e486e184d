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

package cpu_test

import (
	"testing"
	"time"

	"github.com/d100/ee/hardware/cpu"
	"github.com/d100/ee/hardware/memory"
	"github.com/d100/ee/hardware/preferences"
	"github.com/d100/ee/test"
)

// creates a new CPU with the program loaded at address zero. the processor
// is enabled and ready to execute.
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *memory.Memory, *preferences.Preferences) {
	t.Helper()

	mem := memory.NewMemory()
	mem.Load(0x0000, program)

	prefs := preferences.Defaults()

	mc, err := cpu.NewCPU(mem, prefs)
	test.DemandSuccess(t, err)

	mc.Reset()
	mc.Control.ProcessorEnabled.Store(true)

	return mc, mem, prefs
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	return cycles
}

func assertMem(t *testing.T, mem *memory.Memory, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %04x)", d, value, address)
	}
}

type fakeClock struct {
	now time.Duration
}

func (clk *fakeClock) Now() time.Duration {
	return clk.now
}
