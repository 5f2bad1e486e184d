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
	"io/fs"
	"os"
	"sync"

	"github.com/d100/ee/hardware/cpu"
	"github.com/d100/ee/hardware/memory"
	"github.com/d100/ee/hardware/memory/memorymap"
	"github.com/d100/ee/hardware/peripherals/shifter"
	"github.com/d100/ee/hardware/preferences"
	"github.com/d100/ee/logger"
)

// ROM images and where they are loaded.
var romImages = []struct {
	name   string
	origin uint16
}{
	{name: "invaders.h", origin: memorymap.OriginROMH},
	{name: "invaders.g", origin: memorymap.OriginROMG},
	{name: "invaders.f", origin: memorymap.OriginROMF},
	{name: "invaders.e", origin: memorymap.OriginROME},
}

// DiagImage is the name of the CPU diagnostic program. In diagnostic mode it
// is loaded over the Space Invaders ROMs.
const DiagImage = "cpudiag.bin"

// opcodes for the IN and OUT instructions.
const (
	opcodeIn  = 0xdb
	opcodeOut = 0xd3
)

// Machine is the Space Invaders board. It owns the memory, the CPU and the
// shift register peripheral.
type Machine struct {
	Prefs   *preferences.Preferences
	Mem     *memory.Memory
	CPU     *cpu.CPU
	Shifter *shifter.ShiftRegister

	// held by the run loop for every instruction. observers must hold the
	// lock while inspecting the machine. see Borrow()
	crit sync.Mutex

	// serialises the control signals
	ctl    sync.Mutex
	cancel context.CancelFunc
	done   chan bool
	ended  bool

	errCrit sync.Mutex
	err     error
}

// NewMachine is the preferred method of initialisation for the Machine type.
// ROM images are loaded from the directory named in the ROMPath preference.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		prefs = preferences.Defaults()
	}
	return NewMachineFromFS(os.DirFS(prefs.ROMPath.Get().(string)), prefs)
}

// NewMachineFromFS is like NewMachine() but ROM images are loaded from the
// supplied file system.
func NewMachineFromFS(fsys fs.FS, prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		prefs = preferences.Defaults()
	}

	m := &Machine{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Shifter: shifter.NewShiftRegister(),
	}

	var err error

	m.CPU, err = cpu.NewCPU(m.Mem, prefs)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	err = m.loadROMs(fsys)
	if err != nil {
		return nil, err
	}

	if prefs.Diagnostic.Get().(bool) {
		err = m.loadDiag(fsys)
		if err != nil {
			return nil, err
		}
	}

	in, out := m.Shifter.Handlers()
	m.CPU.SetOverride(opcodeIn, in)
	m.CPU.SetOverride(opcodeOut, out)

	return m, nil
}

func (m *Machine) loadROMs(fsys fs.FS) error {
	for _, r := range romImages {
		d, err := fs.ReadFile(fsys, r.name)
		if err != nil {
			return fmt.Errorf("machine: %w", err)
		}
		m.Mem.Load(r.origin, d)
		logger.Logf(logger.Allow, "machine", "loaded %s at %04x (%d bytes)", r.name, r.origin, len(d))
	}
	return nil
}

// the diagnostic program is written for CP/M and expects to be loaded at
// 0x0100. memory is patched so that it runs on the bare machine.
func (m *Machine) loadDiag(fsys fs.FS) error {
	d, err := fs.ReadFile(fsys, DiagImage)
	if err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	m.Mem.Load(memorymap.OriginDiag, d)
	logger.Logf(logger.Allow, "machine", "loaded %s at %04x (%d bytes)", DiagImage, memorymap.OriginDiag, len(d))

	// JMP $0100
	m.Mem.Load(0x0000, []uint8{0xc3, 0x00, 0x01})

	// fix the stack pointer used by the program
	m.Mem.Write(0x0170, 0x07)

	// skip the DAA test. JMP $05C2
	m.Mem.Load(0x059c, []uint8{0xc3, 0xc2, 0x05})

	m.CPU.Control.Diagnostic.Store(true)

	return nil
}

func (m *Machine) String() string {
	var s string
	m.Borrow(func(mc *cpu.CPU, _ *memory.Memory, sr *shifter.ShiftRegister) {
		s = fmt.Sprintf("%s [%s] %s", mc, &mc.Control, sr)
	})
	return s
}

// Borrow gives the function exclusive access to the machine. The function
// must not block.
func (m *Machine) Borrow(f func(*cpu.CPU, *memory.Memory, *shifter.ShiftRegister)) {
	m.crit.Lock()
	defer m.crit.Unlock()
	f(m.CPU, m.Mem, m.Shifter)
}

// Input forwards the state of a cabinet button to the shift register.
func (m *Machine) Input(i shifter.Input, pressed bool) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if pressed {
		m.Shifter.Press(i)
	} else {
		m.Shifter.Release(i)
	}
}

// Err returns the error that caused the run loop to end. Returns nil if the
// run loop ended normally or has not ended.
func (m *Machine) Err() error {
	m.errCrit.Lock()
	defer m.errCrit.Unlock()
	return m.err
}

func (m *Machine) setErr(err error) {
	m.errCrit.Lock()
	defer m.errCrit.Unlock()
	m.err = err
}
