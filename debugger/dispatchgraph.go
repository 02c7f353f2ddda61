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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// dispatchSnapshot is the plain-data shape memviz walks to render the
// dispatch table. It exists because memviz reflects over whatever value
// it's given, and the live dispatchTable holds interface values (Adapter,
// Evaluator) that are more useful rendered as a short label than walked
// field-by-field. Each slot is labelled with the name of the CpuId its
// adapter reports; the adapter's Go type is not shown.
type dispatchSnapshot struct {
	Console ConsoleId
	Slots   map[CpuId]string
}

// WriteDispatchGraph renders the live dispatch table as a Graphviz .dot
// graph to w, useful when wiring up a new console's adapter set and
// checking the table is fully populated (§10.6).
func (c *Coordinator) WriteDispatchGraph(w io.Writer) {
	snap := dispatchSnapshot{
		Console: c.consoleId,
		Slots:   map[CpuId]string{},
	}
	for _, id := range c.dispatch.active() {
		snap.Slots[id] = adapterTypeName(c.dispatch.slot(id).Adapter)
	}
	memviz.Map(w, &snap)
}

func adapterTypeName(a Adapter) string {
	if a == nil {
		return "<nil>"
	}
	return a.CpuId().String()
}
