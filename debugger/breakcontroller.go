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
	"time"

	"github.com/jetsetilly/coordinator/errors"
	"github.com/jetsetilly/coordinator/logger"
)

// RequestBreak is called by a controller (C) to ask that the emulation
// thread break at the next boundary and hold there. Paired acquire/release
// calls from the same controller bracket a "please be broken during this
// region" (§4.3).
func (c *Coordinator) RequestBreak(acquire bool) {
	assertOnControllerThread()
	if acquire {
		c.breakRequestCount.Add(1)
		return
	}
	if c.breakRequestCount.Add(-1) < 0 {
		c.breakRequestCount.Store(0)
	}
}

// HasBreakRequest reports whether any controller currently has an
// outstanding RequestBreak(acquire).
func (c *Coordinator) HasBreakRequest() bool {
	return c.breakRequestCount.Load() > 0
}

// Suspend is called by a controller (C) to take over the emulation thread
// without producing a user-visible break. While suspendRequestCount > 0, E
// never parks and any existing park immediately exits (P3).
func (c *Coordinator) Suspend(acquire bool) {
	assertOnControllerThread()
	if acquire {
		c.suspendRequestCount.Add(1)
		return
	}
	if c.suspendRequestCount.Add(-1) < 0 {
		c.suspendRequestCount.Store(0)
		logger.Log(logger.Allow, "debugger", "Suspend(release) called with zero counter")
	}
}

// ResetSuspendCounter force-zeroes the suspend counter; used on rollback
// paths where the normal acquire/release bracket cannot be trusted.
func (c *Coordinator) ResetSuspendCounter() {
	assertOnControllerThread()
	c.suspendRequestCount.Store(0)
}

// withSuspend runs fn under a scoped internal suspension: acquire on entry,
// guaranteed release on every exit path via defer (§5 "Scoped
// acquisitions").
func (c *Coordinator) withSuspend(fn func()) {
	c.Suspend(true)
	defer c.Suspend(false)
	fn()
}

// Run clears all step state (Run() on every active adapter) and clears
// waitForBreakResume, unparking E if it was parked.
func (c *Coordinator) Run() {
	assertOnControllerThread()
	for _, id := range c.dispatch.active() {
		c.dispatch.slot(id).Adapter.Run()
	}
	c.waitForBreakResume.Store(false)
}

// Step arms a step request on the targeted adapter and runs every other
// adapter freely, under a scoped suspension so no stray break fires while
// step state is being manipulated (§4.3).
func (c *Coordinator) Step(cpu CpuId, count int, t StepType) error {
	assertOnControllerThread()
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return errors.Errorf(errors.CpuTypeNotHosted, cpu)
	}

	c.withSuspend(func() {
		slot.Adapter.Step(count, t)
		for _, id := range c.dispatch.active() {
			if id == cpu {
				continue
			}
			c.dispatch.slot(id).Adapter.Run()
		}
		c.waitForBreakResume.Store(false)
	})
	return nil
}

// IsPaused reports whether the emulation thread is currently parked.
func (c *Coordinator) IsPaused() bool {
	return c.waitForBreakResume.Load()
}

// IsExecutionStopped reports whether the emulation thread is not currently
// inside a productive instruction step.
func (c *Coordinator) IsExecutionStopped() bool {
	return c.executionStopped.Load()
}

// ProcessBreakConditions is called by E after an instruction, read or write
// has been processed by the adapter. It decides whether to park.
func (c *Coordinator) ProcessBreakConditions(src CpuId, op MemoryOperationInfo, addr AddressInfo) {
	slot := c.dispatch.slot(src)
	if slot == nil {
		return
	}
	adapter := slot.Adapter
	step := adapter.StepRequest()
	bpMgr := adapter.GetBreakpointManager()

	bpId := -1
	if bpMgr != nil {
		bpId = bpMgr.Check(op, addr, true)
	}

	switch {
	case c.HasBreakRequest() || c.waitForBreakResume.Load() ||
		(step.BreakNeeded && (!adapter.IgnoreBreakpoints() || step.Type == CpuCycleStep)):
		c.sleepUntilResume(BreakEvent{Cpu: src, Source: step.Source, Operation: &op, BreakpointId: bpId})
	case bpId >= 0 && !adapter.IgnoreBreakpoints():
		c.sleepUntilResume(BreakEvent{Cpu: src, Source: SourceBreakpoint, Operation: &op, BreakpointId: bpId})
	}
}

// ProcessPredictiveBreakpoint is the "about to happen" counterpart to
// ProcessBreakConditions: executed=false, and only the breakpoint branch
// applies. Skipped entirely if the adapter is currently ignoring
// breakpoints.
func (c *Coordinator) ProcessPredictiveBreakpoint(src CpuId, op MemoryOperationInfo, addr AddressInfo) {
	slot := c.dispatch.slot(src)
	if slot == nil {
		return
	}
	adapter := slot.Adapter
	if adapter.IgnoreBreakpoints() {
		return
	}

	bpMgr := adapter.GetBreakpointManager()
	if bpMgr == nil {
		return
	}
	if bpId := bpMgr.Check(op, addr, false); bpId >= 0 {
		c.sleepUntilResume(BreakEvent{Cpu: src, Source: SourceBreakpoint, Operation: &op, BreakpointId: bpId})
	}
}

// BreakImmediately is called by adapters for console-specific conditions
// (e.g. invalid VRAM access). If the configured flag for reason is false,
// this is a no-op.
func (c *Coordinator) BreakImmediately(src CpuId, reason BreakSource) {
	if !c.config.BreakImmediatelyFlags[reason] {
		return
	}
	c.sleepUntilResume(BreakEvent{Cpu: src, Source: reason})
}

// sleepUntilResume is the park loop (§4.3). It is only ever called from E.
func (c *Coordinator) sleepUntilResume(event BreakEvent) {
	if c.suspendRequestCount.Load() > 0 {
		return
	}

	c.executionStopped.Store(true)
	defer c.executionStopped.Store(false)

	// waitForBreakResume (and therefore IsPaused) goes true for every park,
	// silent or not - a controller asking IsPaused() can't tell an
	// unannounced break from an announced one, only CodeBreak delivery
	// differs (scenario 2).
	c.waitForBreakResume.Store(true)

	notify := event.Source != SourceUnspecified || c.breakRequestCount.Load() == 0
	if notify {
		c.audio.Stop()

		if c.config.SingleBreakpointPerInstruction {
			if slot := c.dispatch.slot(event.Cpu); slot != nil {
				slot.Adapter.SetIgnoreBreakpoints(true)
			}
		}
		if c.config.DrawPartialFrameOnBreak {
			if slot := c.dispatch.slot(event.Cpu); slot != nil {
				slot.Adapter.DrawPartialFrame()
			}
		}

		ev := event
		c.notify.publish(Notification{Kind: CodeBreak, Break: &ev})
	}

	for c.suspendRequestCount.Load() == 0 {
		var ready bool
		if notify {
			ready = !c.waitForBreakResume.Load() && c.breakRequestCount.Load() == 0
		} else {
			ready = c.breakRequestCount.Load() == 0
		}
		if ready {
			break
		}
		if c.breakRequestCount.Load() > 0 {
			time.Sleep(c.config.PollActiveInterval)
		} else {
			time.Sleep(c.config.PollIdleInterval)
		}
	}

	// whatever unparked us - Run()/Step() clearing it, a silent release, or
	// a suspend forcing the exit - the park is over.
	c.waitForBreakResume.Store(false)

	if notify {
		c.notify.publish(Notification{Kind: DebuggerResumed})
		c.audio.Resume()
	}
}

// Close tears down the coordinator. It repeatedly clears
// waitForBreakResume (calling Run on every adapter) until E observes the
// release and exits its park, bounded so a thread that has already exited
// abnormally cannot hang teardown forever (§9 open question).
func (c *Coordinator) Close() {
	for i := 0; i < c.config.TeardownMaxIterations && c.executionStopped.Load(); i++ {
		c.Run()
		time.Sleep(c.config.PollActiveInterval)
	}
	if c.executionStopped.Load() {
		logger.Log(logger.Allow, "debugger", "Close: emulation thread did not exit its park within the teardown bound")
	}
}
