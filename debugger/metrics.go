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
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// ServeMetrics starts the statsview Go-runtime dashboard on
// Config.MetricsAddr (§10.3). statsview's own gauges cover goroutine count,
// heap and GC stats; it has no API for registering arbitrary user counters,
// so the Break Controller/Trace Merger/notifier figures in MetricsSnapshot
// are exposed separately through Metrics() for a caller to poll and chart
// however it likes (its own HTTP handler, a log line, a second dashboard).
// ServeMetrics is opt-in: an empty MetricsAddr is a no-op so headless/test
// use incurs no HTTP server. Runs in a background goroutine and returns
// immediately; the server is never torn down by Close, matching the
// "fire and forget" nature of a debug-only dashboard.
func (c *Coordinator) ServeMetrics() {
	if c.config.MetricsAddr == "" {
		return
	}

	viewer.SetConfiguration(
		viewer.WithTheme(viewer.ThemeWesteros),
		viewer.WithAddr(c.config.MetricsAddr),
	)

	sv := statsview.New()
	go sv.Start()

	c.logInternal("metrics dashboard listening on %s", c.config.MetricsAddr)
}

// MetricsSnapshot is a point-in-time read of the Break Controller, Trace
// Merger, and notifier counters, for a caller to poll and chart outside of
// the statsview runtime dashboard.
type MetricsSnapshot struct {
	BreakRequestCount        int32
	SuspendRequestCount      int32
	WaitForBreakResume       bool
	ExecutionStopped         bool
	NotificationsDropped     uint64
	TraceRowsMergedPerSecond float64
}

// Metrics returns the current Break Controller/Trace Merger/notifier state.
func (c *Coordinator) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		BreakRequestCount:        c.breakRequestCount.Load(),
		SuspendRequestCount:      c.suspendRequestCount.Load(),
		WaitForBreakResume:       c.waitForBreakResume.Load(),
		ExecutionStopped:         c.executionStopped.Load(),
		NotificationsDropped:     c.notify.droppedCount(),
		TraceRowsMergedPerSecond: c.TraceRowsMergedPerSecond(),
	}
}
