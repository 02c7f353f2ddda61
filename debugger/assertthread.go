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
	"sync/atomic"

	"github.com/jetsetilly/coordinator/assert"
	"github.com/jetsetilly/coordinator/logger"
)

// AssertThreadDiscipline, when true, enables the goroutine-identity checks
// below. Off by default (zero cost in production); tests that want to
// catch an E/C calling-convention violation (§5) turn it on.
var AssertThreadDiscipline bool

// emulationGoRoutineId records the goroutine that called BindEmulationThread,
// the only goroutine entitled to call instrumentation entry points,
// ProcessBreakConditions and the Event Router (§5).
var emulationGoRoutineId atomic.Uint64

// BindEmulationThread records the calling goroutine as E. Call this once,
// from the emulation thread, before driving any instrumentation entry
// point.
func BindEmulationThread() {
	emulationGoRoutineId.Store(assert.GetGoRoutineID())
}

// assertOnEmulationThread panics if AssertThreadDiscipline is enabled,
// BindEmulationThread has been called, and the current goroutine isn't E.
// Used by the hot-path entry points to enforce the E-only calling
// convention (§5). P9's CpuId checks are separate: OnIdleCycle and the PPU
// entry points panic on an unsupported CpuId whether or not this is on.
func assertOnEmulationThread() {
	if !AssertThreadDiscipline {
		return
	}
	want := emulationGoRoutineId.Load()
	if want == 0 {
		return
	}
	if got := assert.GetGoRoutineID(); got != want {
		logger.Logf(logger.Allow, "debugger", "instrumentation entry point called from goroutine %d, expected emulation thread %d", got, want)
		panic("debugger: instrumentation entry point called off the emulation thread")
	}
}

// assertOnControllerThread panics if AssertThreadDiscipline is enabled,
// BindEmulationThread has been called, and the current goroutine IS E.
// Controller-side operations (Step, Run, RequestBreak, Suspend, ...) must
// never be called from the emulation thread itself.
func assertOnControllerThread() {
	if !AssertThreadDiscipline {
		return
	}
	want := emulationGoRoutineId.Load()
	if want == 0 {
		return
	}
	if got := assert.GetGoRoutineID(); got == want {
		logger.Log(logger.Allow, "debugger", "controller operation called from the emulation thread")
		panic("debugger: controller operation called from the emulation thread")
	}
}
