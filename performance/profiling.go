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
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
)

// Profile names the directory that profiles are written to. An empty value
// means that no profiles are written.
type Profile string

// file names of the profiles written to the Profile directory.
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

func (p Profile) cpu(run func() error) error {
	if p == "" {
		return run()
	}

	f, err := os.Create(filepath.Join(string(p), cpuProfileFile))
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

func (p Profile) mem() error {
	if p == "" {
		return nil
	}

	f, err := os.Create(filepath.Join(string(p), memProfileFile))
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
