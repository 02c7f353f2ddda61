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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/coordinator/errors"
	"github.com/jetsetilly/coordinator/logger"
)

// AdapterFactory builds the Adapter for one CpuId, called once per active
// CpuId at construction.
type AdapterFactory func(id CpuId) Adapter

// EvaluatorFactory builds a throwaway Evaluator bound to adapter, used by
// EvaluateExpression when useCache is false.
type EvaluatorFactory func(adapter Adapter) Evaluator

// Coordinator is the central debugger coordinator: one long-lived object
// owned by the Emulator (§2). It is safe for concurrent use by any number
// of controller goroutines (C); only the instrumentation entry points and
// the Event Router are restricted to the single emulation goroutine (E).
type Coordinator struct {
	config    Config
	consoleId ConsoleId
	dispatch  dispatchTable
	script    ScriptEngine
	audio     AudioSink

	newEvaluator EvaluatorFactory
	addrMapper   AddressMapper

	log    *logBuffer
	notify *notifier

	globalRowId     atomic.Uint64
	traceRowsMerged atomic.Uint64
	createdAt       time.Time

	breakRequestCount   atomic.Int32
	suspendRequestCount atomic.Int32
	waitForBreakResume  atomic.Bool
	executionStopped    atomic.Bool

	mu          sync.Mutex
	frameEvents map[CpuId]int
	memAccesses map[CpuId]int
}

// nopScriptEngine is used when no script is attached; HasScript is always
// false so the fan-out never calls into it.
type nopScriptEngine struct{}

func (nopScriptEngine) HasScript() bool { return false }
func (nopScriptEngine) ProcessMemoryOperation(AddressInfo, int, MemoryOperationType, CpuId) {}
func (nopScriptEngine) ProcessEvent(CpuId, EventType) {}

// NewCoordinator constructs a coordinator for consoleId, discovering the
// console's active CpuIds and building one adapter (and, where
// makeEvaluator is non-nil, one cached evaluator) per CpuId via factory
// (§2 Lifecycle). If config.RunSelfTestOnStart is set, a small fixed
// battery of expression evaluations is run against a throwaway evaluator
// and failures are logged, never panicked (§9).
func NewCoordinator(consoleId ConsoleId, config Config, factory AdapterFactory, makeEvaluator EvaluatorFactory) *Coordinator {
	c := &Coordinator{
		config:       config,
		consoleId:    consoleId,
		script:       nopScriptEngine{},
		audio:        NopAudioSink{},
		newEvaluator: makeEvaluator,
		log:          newLogBuffer(config.LogCapacity),
		notify:       newNotifier(),
		frameEvents:  map[CpuId]int{},
		memAccesses:  map[CpuId]int{},
		createdAt:    time.Now(),
	}

	for _, id := range consoleId.CpuIds() {
		adapter := factory(id)
		adapter.Init()

		var eval Evaluator
		if makeEvaluator != nil {
			eval = makeEvaluator(adapter)
		}
		c.dispatch.set(id, adapter, eval)
	}
	for _, id := range consoleId.CpuIds() {
		c.dispatch.slot(id).Adapter.ProcessConfigChange()
	}

	if config.RunSelfTestOnStart {
		c.runSelfTest()
	}

	return c
}

// SetScriptEngine attaches a script engine; nil restores the no-op
// default.
func (c *Coordinator) SetScriptEngine(engine ScriptEngine) {
	if engine == nil {
		engine = nopScriptEngine{}
	}
	c.script = engine
}

// SetAudioSink attaches the audio mixer SleepUntilResume stops/resumes
// around a break; nil restores NopAudioSink.
func (c *Coordinator) SetAudioSink(sink AudioSink) {
	if sink == nil {
		sink = NopAudioSink{}
	}
	c.audio = sink
}

func (c *Coordinator) runSelfTest() {
	for _, expr := range []string{"1+1", "0==0", "0xff"} {
		for _, id := range c.dispatch.active() {
			if _, err := c.EvaluateExpression(expr, id, false); err != nil {
				c.logInternal("self-test expression %q failed on %s: %v", expr, id, err)
			}
		}
	}
}

func (c *Coordinator) logInternal(format string, args ...interface{}) {
	logger.Logf(logger.Allow, "debugger", format, args...)
}

// Log appends msg to the coordinator's user-facing Log Buffer (§4.7).
func (c *Coordinator) Log(msg string) {
	c.log.add(msg)
}

// GetLog returns every line of the Log Buffer, newline-separated.
func (c *Coordinator) GetLog() string {
	return c.log.get()
}

// Subscribe registers for CodeBreak/DebuggerResumed/EventViewerRefresh
// notifications (§6). The returned unsubscribe func must be called when
// the caller is done listening.
func (c *Coordinator) Subscribe() (<-chan Notification, func()) {
	return c.notify.Subscribe()
}

func (c *Coordinator) clearFrameEvents(cpu CpuId) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frameEvents[cpu] = 0
}

// FrameEventCount returns the number of events recorded for cpu's current
// frame, exercised by tests asserting P10.
func (c *Coordinator) FrameEventCount(cpu CpuId) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameEvents[cpu]
}

// RecordFrameEvent increments cpu's per-frame event count; called by
// adapters (via their event manager) as events occur during a frame.
func (c *Coordinator) RecordFrameEvent(cpu CpuId) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frameEvents[cpu]++
}

func (c *Coordinator) resetMemoryCounters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.memAccesses {
		c.memAccesses[k] = 0
	}
}

// recordMemoryAccess increments cpu's memory-access counter; called by
// OnRead/OnWrite on every bus access.
func (c *Coordinator) recordMemoryAccess(cpu CpuId) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memAccesses[cpu]++
}

// MemoryAccessCount returns the number of reads and writes recorded for cpu
// since the last Reset or StateLoaded event.
func (c *Coordinator) MemoryAccessCount(cpu CpuId) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.memAccesses[cpu]
}

// GetAbsoluteAddress and GetRelativeAddress are out of scope for their
// actual mapping logic (the memory-map tables are console-specific and
// external to this package, §1); the coordinator only owns the round-trip
// contract. AddressMapper, when set, supplies the real translation.
type AddressMapper interface {
	ToAbsolute(rel AddressInfo, cpu CpuId) AddressInfo
	ToRelative(abs AddressInfo, cpu CpuId) AddressInfo
}

// SetAddressMapper installs the console's address translator.
func (c *Coordinator) SetAddressMapper(m AddressMapper) {
	c.addrMapper = m
}

// GetAbsoluteAddress translates a CPU-relative address to the canonical
// absolute address, or returns rel unchanged if no AddressMapper is set.
func (c *Coordinator) GetAbsoluteAddress(rel AddressInfo, cpu CpuId) AddressInfo {
	if c.addrMapper == nil {
		return rel
	}
	return c.addrMapper.ToAbsolute(rel, cpu)
}

// GetRelativeAddress translates an absolute address into cpu's relative
// address space, or returns abs unchanged if no AddressMapper is set.
func (c *Coordinator) GetRelativeAddress(abs AddressInfo, cpu CpuId) AddressInfo {
	if c.addrMapper == nil {
		return abs
	}
	return c.addrMapper.ToRelative(abs, cpu)
}

// SetBreakpoints forwards a breakpoint set to every active adapter's
// BreakpointManager, under a scoped suspend (§5).
func (c *Coordinator) SetBreakpoints(set func(BreakpointManager)) {
	c.withSuspend(func() {
		for _, id := range c.dispatch.active() {
			if bpMgr := c.dispatch.slot(id).Adapter.GetBreakpointManager(); bpMgr != nil {
				set(bpMgr)
			}
		}
	})
}

// GetTraceLogger returns cpu's trace logger, or nil on an absent CpuId.
func (c *Coordinator) GetTraceLogger(cpu CpuId) TraceLogger {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return nil
	}
	return slot.Adapter.GetTraceLogger()
}

// GetCallstackManager, GetEventManager, GetPpuTools, GetAssembler are
// thin sub-tool accessors (§6); their internals are out of scope (§1).
func (c *Coordinator) GetCallstackManager(cpu CpuId) CallstackManager {
	if slot := c.dispatch.slot(cpu); slot != nil {
		return slot.Adapter.GetCallstackManager()
	}
	return nil
}

func (c *Coordinator) GetEventManager(cpu CpuId) EventManager {
	if slot := c.dispatch.slot(cpu); slot != nil {
		return slot.Adapter.GetEventManager()
	}
	return nil
}

func (c *Coordinator) GetPpuTools(cpu CpuId) PpuTools {
	if slot := c.snesFamilyAdapter(cpu); slot != nil {
		return slot.Adapter.GetPpuTools()
	}
	return nil
}

func (c *Coordinator) GetAssembler(cpu CpuId) Assembler {
	if slot := c.dispatch.slot(cpu); slot != nil {
		return slot.Adapter.GetAssembler()
	}
	return nil
}

// SaveRomToDisk delegates to the console-main adapter, except the SGB
// special case: a Game Boy cartridge embedded in an SNES shell, where the
// Game Boy adapter slot (if present) handles serialization instead (§9).
func (c *Coordinator) SaveRomToDisk(filename string, asIps bool, strip CdlStripOption) error {
	target := c.consoleId.MainCpu()
	if c.consoleId == ConsoleSnes && c.dispatch.has(Gameboy) {
		target = Gameboy
	}

	slot := c.dispatch.slot(target)
	if slot == nil {
		return errors.Errorf(errors.CpuTypeNotHosted, target)
	}
	if err := slot.Adapter.SaveRomToDisk(filename, asIps, strip); err != nil {
		return errors.Errorf(errors.RomSaveError, err)
	}
	return nil
}
