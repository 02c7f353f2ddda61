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

func TestDispatchTableEmpty(t *testing.T) {
	tbl := newDispatchTable()
	test.ExpectFailure(t, tbl.has(Snes))
	test.ExpectEquality(t, tbl.slot(Snes), (*AdapterSlot)(nil))
	test.ExpectEquality(t, len(tbl.active()), 0)
}

func TestDispatchTableSetAndLookup(t *testing.T) {
	tbl := newDispatchTable()
	a := NewStubAdapter(Snes)
	tbl.set(Snes, a, nil)

	test.ExpectSuccess(t, tbl.has(Snes))
	test.ExpectFailure(t, tbl.has(Spc))

	slot := tbl.slot(Snes)
	if slot == nil {
		t.Fatalf("expected a populated slot for Snes")
	}
	test.ExpectEquality(t, slot.Adapter, Adapter(a))

	test.ExpectEquality(t, tbl.active(), []CpuId{Snes})
}

func TestDispatchTableActiveOrder(t *testing.T) {
	tbl := newDispatchTable()
	tbl.set(Spc, NewStubAdapter(Spc), nil)
	tbl.set(Snes, NewStubAdapter(Snes), nil)

	// active() walks in enumeration order, not insertion order
	test.ExpectEquality(t, tbl.active(), []CpuId{Snes, Spc})
}

func TestDispatchTableSlotPanicsOnOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic for an out-of-range CpuId")
		}
	}()
	tbl := newDispatchTable()
	tbl.slot(numCpuId)
}

func TestDispatchTableHasIsSafeOnOutOfRange(t *testing.T) {
	tbl := newDispatchTable()
	test.ExpectFailure(t, tbl.has(numCpuId))
	test.ExpectFailure(t, tbl.has(-1))
}
