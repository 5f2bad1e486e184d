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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/d100/ee/prefs"
	"github.com/d100/ee/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// whitespace around keys and values is removed and the unused entries
	// are returned in key order
	prefs.PushCommandLineStack(" hardware.roms:: /tmp/roms ;hardware.cpu.pacing::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.cpu.pacing::true; hardware.roms::/tmp/roms")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// malformed entries are ignored
	prefs.PushCommandLineStack("hardware.roms;hardware.cpu.pacing::true::false;hardware.diagnostic::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.diagnostic::true")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cpu.clockrate::1.5")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("hardware.cpu.clockrate")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "1.5")

	// a value can be taken only once
	ok, _ = prefs.GetCommandLinePref("hardware.cpu.clockrate")
	test.ExpectFailure(t, ok)
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("hardware.roms::outer")
	prefs.PushCommandLineStack("hardware.diagnostic::true")

	// only the most recent group is consulted
	ok, _ := prefs.GetCommandLinePref("hardware.roms")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.diagnostic::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.roms::outer")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	var clock prefs.Float
	var roms prefs.String
	test.DemandSuccess(t, clock.Set(2.0))
	test.DemandSuccess(t, roms.Set("roms"))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("hardware.cpu.clockrate", &clock))
	test.DemandSuccess(t, dsk.Add("hardware.roms", &roms))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("hardware.cpu.clockrate::0.5")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, clock.Get().(float64), 0.5)
	test.ExpectEquality(t, roms.Get().(string), "roms")

	// the override does not last beyond the next load
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, clock.Get().(float64), 2.0)
}
