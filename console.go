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

package main

import (
	"io"
	"strings"
	"sync"
)

// the messages printed by the CPU diagnostic program at the end of the test.
const (
	diagPassed = "CPU IS OPERATIONAL"
	diagFailed = "CPU HAS FAILED"
)

// console passes the output of the diagnostic program to an io.Writer and
// watches for the end of the test.
type console struct {
	out io.Writer

	crit   sync.Mutex
	text   strings.Builder
	result string

	// closed when either diagPassed or diagFailed has been seen
	done chan bool
}

func newConsole(out io.Writer) *console {
	return &console{
		out:  out,
		done: make(chan bool),
	}
}

func (con *console) Write(p []byte) (int, error) {
	con.crit.Lock()
	defer con.crit.Unlock()

	n, err := con.out.Write(p)

	if con.result == "" {
		con.text.Write(p)
		s := con.text.String()
		switch {
		case strings.Contains(s, diagFailed):
			con.result = diagFailed
			close(con.done)
		case strings.Contains(s, diagPassed):
			con.result = diagPassed
			close(con.done)
		}
	}

	return n, err
}

func (con *console) passed() bool {
	con.crit.Lock()
	defer con.crit.Unlock()
	return con.result == diagPassed
}
