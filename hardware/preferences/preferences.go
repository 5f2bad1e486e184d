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

package preferences

import (
	"github.com/d100/ee/prefs"
	"github.com/d100/ee/resources"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// whether the processor is disabled when the disassembler meets an opcode
	// with no definition. if false the CPU skips the byte
	HaltOnUnknown prefs.Bool

	// diagnostic mode loads the cpudiag image and allows writes to ROM
	Diagnostic prefs.Bool

	// pace the CPU to ClockRate. the alternative is to run as fast as the
	// host allows
	Pacing prefs.Bool

	// speed of processor
	ClockRate prefs.Float // Mhz

	// directory containing the ROM images
	ROMPath prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with the preferences
// file specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := Defaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.haltunknown", &p.HaltOnUnknown)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.pacing", &p.Pacing)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cpu.clockrate", &p.ClockRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.diagnostic", &p.Diagnostic)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.roms", &p.ROMPath)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Defaults returns an instance of Preferences with default values and no
// connection to a preferences file. Load() and Save() do nothing.
func Defaults() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.HaltOnUnknown.Set(true)
	p.Diagnostic.Set(false)
	p.Pacing.Set(false)
	p.ClockRate.Set(2.0)
	p.ROMPath.Set("roms")
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
