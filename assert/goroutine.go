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

// Package assert contains checks on assumptions that cannot be expressed in
// the type system. They are for debugging and testing and should not change
// the behaviour of the program.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// IsOwner returns true if called from the same goroutine that called
// NewOwner().
func (o Owner) IsOwner() bool {
	return o.id == GoroutineID()
}
