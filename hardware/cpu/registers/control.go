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

package registers

import (
	"strings"
	"sync/atomic"
)

// Control holds the emulator control bits. These are not part of the 8080 and
// are kept apart from the Flags so that they can be changed from outside the
// emulation goroutine.
type Control struct {
	// the run loop continues only while ProcessorEnabled is true
	ProcessorEnabled atomic.Bool

	// permits writes to the ROM area and enables the console trap used by
	// the CPU diagnostic program
	Diagnostic atomic.Bool

	// each retired instruction is appended to the execution history
	TraceCapture atomic.Bool
}

func (ctl *Control) String() string {
	s := strings.Builder{}
	if ctl.ProcessorEnabled.Load() {
		s.WriteString("enabled")
	} else {
		s.WriteString("disabled")
	}
	if ctl.Diagnostic.Load() {
		s.WriteString(" diag")
	}
	if ctl.TraceCapture.Load() {
		s.WriteString(" capture")
	}
	return s.String()
}
