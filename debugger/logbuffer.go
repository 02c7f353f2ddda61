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
	"strings"
	"sync"
)

// logBuffer is the coordinator's own user-facing log (§4.7), distinct from
// the ambient logger package used for internal diagnostics. It is part of
// the external facade: a UI or script host can inspect it with GetLog.
type logBuffer struct {
	mu       sync.Mutex
	capacity int
	lines    []string
}

func newLogBuffer(capacity int) *logBuffer {
	if capacity <= 0 {
		capacity = 1000
	}
	return &logBuffer{capacity: capacity}
}

// add appends msg, trimming from the front on overflow.
func (b *logBuffer) add(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, msg)
	if len(b.lines) > b.capacity {
		b.lines = b.lines[len(b.lines)-b.capacity:]
	}
}

// get concatenates every line with newlines.
func (b *logBuffer) get() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, "\n")
}
