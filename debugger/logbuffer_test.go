// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"testing"

	"github.com/jetsetilly/coordinator/test"
)

func TestLogBufferAppendAndGet(t *testing.T) {
	b := newLogBuffer(10)
	b.add("one")
	b.add("two")
	test.ExpectEquality(t, b.get(), "one\ntwo")
}

func TestLogBufferOverflowTrimsFromFront(t *testing.T) {
	b := newLogBuffer(2)
	b.add("one")
	b.add("two")
	b.add("three")
	test.ExpectEquality(t, b.get(), "two\nthree")
}

func TestLogBufferDefaultCapacity(t *testing.T) {
	b := newLogBuffer(0)
	for i := 0; i < 1001; i++ {
		b.add("x")
	}
	lines := 1
	for _, r := range b.get() {
		if r == '\n' {
			lines++
		}
	}
	test.ExpectEquality(t, lines, 1000)
}

func TestCoordinatorLogFacade(t *testing.T) {
	c := newTestCoordinator()
	c.Log("hello")
	c.Log("world")
	test.ExpectEquality(t, c.GetLog(), "hello\nworld")
}
