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

package assert_test

import (
	"testing"

	"github.com/d100/ee/assert"
	"github.com/d100/ee/test"
)

func TestOwner(t *testing.T) {
	id := assert.GoroutineID()
	test.ExpectInequality(t, id, uint64(0))
	test.ExpectEquality(t, assert.GoroutineID(), id)

	o := assert.NewOwner()
	test.ExpectSuccess(t, o.IsOwner())

	var other uint64
	var owner bool

	done := make(chan bool)
	go func() {
		defer close(done)
		other = assert.GoroutineID()
		owner = o.IsOwner()
	}()
	<-done

	test.ExpectInequality(t, other, id)
	test.ExpectFailure(t, owner)
}
