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

// Package logger implements a small, central, ring-buffered log that any
// package in the module can write to without taking a dependency on a
// concrete sink. It exists alongside (and is distinct from) the
// user-facing log buffer kept by the debugger coordinator: this package is
// for internal diagnostics, the coordinator's own log is part of its
// external facade.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission is consulted before an entry is appended. It allows callers to
// silence noisy log sources (eg. a hot-path component that only wants to log
// during development) without every call site needing an if-guard.
type Permission interface {
	AllowLogging() bool
}

// alwaysAllow is the permission used by the package level convenience
// functions.
type alwaysAllow struct{}

func (alwaysAllow) AllowLogging() bool { return true }

// Allow is a Permission value that always allows logging.
var Allow Permission = alwaysAllow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

// Logger is a bounded, thread-safe, FIFO log. The oldest entry is dropped
// once capacity is reached.
type Logger struct {
	crit     sync.Mutex
	capacity int
	entries  []entry
}

// NewLogger creates a Logger with room for capacity entries.
func NewLogger(capacity int) *Logger {
	return &Logger{
		capacity: capacity,
		entries:  make([]entry, 0, capacity),
	}
}

func formatDetail(detail interface{}) string {
	switch d := detail.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	case string:
		return d
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Log adds an entry to the log, subject to perm.AllowLogging().
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) >= l.capacity {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, entry{tag: tag, detail: formatDetail(detail)})
}

// Logf is equivalent to Log() but the detail is built with fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	l.Log(perm, tag, fmt.Sprintf(format, args...))
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write outputs every entry, oldest first, one per line.
func (l *Logger) Write(w io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	s := strings.Builder{}
	for _, e := range l.entries {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}

// Tail outputs, at most, the last n entries.
func (l *Logger) Tail(w io.Writer, n int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}

	s := strings.Builder{}
	for _, e := range l.entries[len(l.entries)-n:] {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}

// central is the package level logger used by the convenience functions
// below. Most of the module logs through these rather than constructing
// their own Logger.
var central = NewLogger(1000)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf is equivalent to Log() but the detail is built with fmt.Sprintf.
func Logf(perm Permission, tag string, format string, args ...interface{}) {
	central.Logf(perm, tag, format, args...)
}

// Clear empties the central logger.
func Clear() {
	central.Clear()
}

// Write outputs every entry in the central logger.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail outputs, at most, the last n entries of the central logger.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}
