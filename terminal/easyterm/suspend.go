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

package easyterm

import (
	"fmt"
	"os"
	"syscall"
)

// SuspendProcess sends the stop signal to the current process. Needed when
// the terminal is in raw mode and the suspend key arrives as an ordinary key.
func SuspendProcess() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return p.Signal(syscall.SIGTSTP)
}
