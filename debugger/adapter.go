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

// CdlStripOption selects how code-data-log annotations are stripped when
// saving a ROM back to disk. The CDL format itself is out of scope (§1);
// the coordinator only ever forwards this tag to the adapter.
type CdlStripOption int

const (
	CdlStripNone CdlStripOption = iota
	CdlStripUnusedData
	CdlStripUnusedCodeAndData
)

// Features describes which optional capabilities an adapter actually
// implements for the console it's attached to. GetDebuggerFeatures returns
// the adapter's own GetSupportedFeatures result.
type Features struct {
	Breakpoints   bool
	CallStack     bool
	Assembler     bool
	Ppu           bool
	IdleCycles    bool
	SaveRomToDisk bool
}

// CallstackManager, EventManager, TraceLogger, PpuTools, Assembler and
// BreakpointManager are the adapter's sub-tool accessors (§4.1). Their
// internals are out of scope (§1); the coordinator only needs to retrieve
// and forward them, except for TraceLogger which it also merges (§4.5).
type CallstackManager interface{}
type EventManager interface{}
type PpuTools interface{}
type Assembler interface{}
type BreakpointManager interface {
	// Check evaluates configured breakpoints against op/addr. executed is
	// true when called from ProcessBreakConditions (the instruction, or
	// access, has already happened) and false when called from
	// ProcessPredictiveBreakpoint (about to happen). A negative result
	// means no breakpoint matched.
	Check(op MemoryOperationInfo, addr AddressInfo, executed bool) int
}

// TraceLogger is a per-CPU FIFO ring buffer of trace rows, each tagged at
// append time with the value of a shared, globally monotonic row-id counter
// (§3 invariant 4, §4.5). Adapters own their TraceLogger; the coordinator
// only reads it, through the Trace Merger.
type TraceLogger interface {
	// IsEnabled reports whether this logger's rows should be included in a
	// merge. Disabled loggers are still traversed (P7).
	IsEnabled() bool

	// RowAt returns the row `offset` entries back from the newest (offset
	// 0 is the newest row), and whether such a row exists.
	RowAt(offset int) (row TraceRow, ok bool)
}

// TraceRow is one formatted line of execution trace, tagged with the global
// row id it was assigned at insertion time.
type TraceRow struct {
	RowId uint64
	Cpu   CpuId
	Line  string
}

// Adapter is the capability set every active CPU is driven through (§4.1).
// The coordinator consumes it and never downcasts, except for the PPU hooks
// and SaveRomToDisk which are already gated by CpuId predicates before the
// call is ever made.
//
// All operations are synchronous and, except where noted, called only on
// the emulation thread (E, §5).
type Adapter interface {
	CpuId() CpuId

	Init()
	ProcessConfigChange()
	Reset()

	// Run clears any step state so the CPU proceeds freely.
	Run()

	// Step arms a step request of the given kind and count; the adapter
	// sets its own StepRequest.BreakNeeded once the count reaches zero.
	Step(count int, t StepType)

	// ProcessInstruction is called at the boundary between two
	// instructions.
	ProcessInstruction()

	ProcessRead(addr AddressInfo, value int, opType MemoryOperationType)
	ProcessWrite(addr AddressInfo, value int, opType MemoryOperationType)

	// ProcessIdleCycle is only ever called for CpuIds where HasIdleCycles()
	// is true (SNES, SA-1).
	ProcessIdleCycle()

	ProcessInterrupt(originalPc, currentPc int, forNmi bool)

	// ProcessPpuRead/Write/Cycle are only ever called for CpuIds where
	// HasPpu() is true.
	ProcessPpuRead(addr AddressInfo, value int, opType MemoryOperationType)
	ProcessPpuWrite(addr AddressInfo, value int, opType MemoryOperationType)
	ProcessPpuCycle()

	GetCallstackManager() CallstackManager
	GetEventManager() EventManager
	GetTraceLogger() TraceLogger
	GetPpuTools() PpuTools
	GetAssembler() Assembler
	GetBreakpointManager() BreakpointManager
	GetSupportedFeatures() Features

	// GetState/SetState copy CPU register state in a console-specific
	// encoding; the coordinator treats it as an opaque blob.
	GetState() []byte
	SetState(state []byte)

	// GetPpuState/SetPpuState are only meaningful when HasPpu() is true;
	// for the SNES family they all funnel through the SNES adapter (§4.6)
	// rather than being called on coprocessor adapters directly.
	GetPpuState() []byte
	SetPpuState(state []byte)

	GetProgramCounter(getInstPc bool) int

	// SetProgramCounter is rejected (silently, per §7) unless
	// AllowChangeProgramCounter() is currently true.
	SetProgramCounter(addr int)
	AllowChangeProgramCounter() bool
	SetAllowChangeProgramCounter(allow bool)

	// IgnoreBreakpoints is set by the coordinator to suppress re-break on
	// the same instruction under the "one break per instruction" policy.
	IgnoreBreakpoints() bool
	SetIgnoreBreakpoints(ignore bool)

	// StepRequest exposes the adapter's own step bookkeeping (§3) so the
	// Break Controller can read BreakNeeded/Type/Source without a second
	// copy of the state.
	StepRequest() *StepRequest

	// InstructionProgress is the most recently observed memory op plus the
	// current CPU cycle count, for mid-instruction UI display.
	InstructionProgress() (op MemoryOperationInfo, cycle uint64)

	// SaveRomToDisk is only ever called on the console-main adapter (or,
	// for the SGB special case, the Game Boy adapter embedded in an SNES
	// console, §9).
	SaveRomToDisk(filename string, asIps bool, strip CdlStripOption) error

	// DrawPartialFrame is invoked by SleepUntilResume when
	// Config.DrawPartialFrameOnBreak is set, so the UI has something to
	// show mid-frame at a break. Adapters without a PPU are free to no-op.
	DrawPartialFrame()
}
