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

// StubAdapter is a minimal, complete Adapter implementation that does
// nothing beyond satisfying the interface and tracking the handful of
// fields the Break Controller and Instrumentation Fan-out actually read
// and write. It exists so that coordinator tests can exercise the full
// break/suspend/step protocol against a CPU that does no real emulation,
// the same role StubCartYieldHook plays for coprocessor.CartCoProc.
type StubAdapter struct {
	id CpuId

	step       StepRequest
	ignoreBps  bool
	allowPcSet bool
	pc         int
	state      []byte
	ppuState   []byte
	bpMgr      BreakpointManager
	traceLog   TraceLogger

	instructionCount int
	cycle            uint64
	lastOp           MemoryOperationInfo
	partialFrames    int
	reset            int
	savedTo          string
}

// NewStubAdapter creates a StubAdapter for the given CpuId with a no-match
// breakpoint manager. Tests that need breakpoints to fire should replace
// bpMgr with StubAdapter.bpMgr directly or via SetBreakpointManager.
func NewStubAdapter(id CpuId) *StubAdapter {
	return &StubAdapter{
		id:    id,
		bpMgr: noBreakpoints{},
	}
}

// SetBreakpointManager installs a custom BreakpointManager, letting tests
// control exactly when bpId >= 0 is returned.
func (a *StubAdapter) SetBreakpointManager(bpMgr BreakpointManager) {
	a.bpMgr = bpMgr
}

// SetTraceLogger installs a TraceLogger, letting tests drive the Trace
// Merger against known rows.
func (a *StubAdapter) SetTraceLogger(tl TraceLogger) {
	a.traceLog = tl
}

func (a *StubAdapter) CpuId() CpuId { return a.id }

func (a *StubAdapter) Init()                {}
func (a *StubAdapter) ProcessConfigChange() {}

func (a *StubAdapter) Reset() {
	a.reset++
	a.step.Clear()
}

func (a *StubAdapter) Run() { a.step.Clear() }

func (a *StubAdapter) Step(count int, t StepType) { a.step.Set(count, t) }

func (a *StubAdapter) ProcessInstruction() {
	a.instructionCount++
	a.cycle++
	a.step.Decrement()
}

func (a *StubAdapter) ProcessRead(addr AddressInfo, value int, opType MemoryOperationType) {
	a.lastOp = MemoryOperationInfo{Address: addr, Value: value, Type: opType}
}

func (a *StubAdapter) ProcessWrite(addr AddressInfo, value int, opType MemoryOperationType) {
	a.lastOp = MemoryOperationInfo{Address: addr, Value: value, Type: opType}
}

func (a *StubAdapter) ProcessIdleCycle() {
	a.lastOp.Type = MemIdle
}

func (a *StubAdapter) ProcessInterrupt(originalPc, currentPc int, forNmi bool) {
	a.pc = currentPc
}

func (a *StubAdapter) ProcessPpuRead(addr AddressInfo, value int, opType MemoryOperationType) {
	a.lastOp = MemoryOperationInfo{Address: addr, Value: value, Type: opType}
}

func (a *StubAdapter) ProcessPpuWrite(addr AddressInfo, value int, opType MemoryOperationType) {
	a.lastOp = MemoryOperationInfo{Address: addr, Value: value, Type: opType}
}

func (a *StubAdapter) ProcessPpuCycle() {}

func (a *StubAdapter) GetCallstackManager() CallstackManager   { return nil }
func (a *StubAdapter) GetEventManager() EventManager           { return nil }
func (a *StubAdapter) GetTraceLogger() TraceLogger             { return a.traceLog }
func (a *StubAdapter) GetPpuTools() PpuTools                   { return nil }
func (a *StubAdapter) GetAssembler() Assembler                 { return nil }
func (a *StubAdapter) GetBreakpointManager() BreakpointManager { return a.bpMgr }
func (a *StubAdapter) GetSupportedFeatures() Features          { return Features{} }

func (a *StubAdapter) GetState() []byte     { return a.state }
func (a *StubAdapter) SetState(s []byte)    { a.state = s }
func (a *StubAdapter) GetPpuState() []byte  { return a.ppuState }
func (a *StubAdapter) SetPpuState(s []byte) { a.ppuState = s }

func (a *StubAdapter) GetProgramCounter(getInstPc bool) int { return a.pc }

func (a *StubAdapter) SetProgramCounter(addr int) {
	if !a.allowPcSet {
		return
	}
	a.pc = addr
}

func (a *StubAdapter) AllowChangeProgramCounter() bool     { return a.allowPcSet }
func (a *StubAdapter) SetAllowChangeProgramCounter(v bool) { a.allowPcSet = v }
func (a *StubAdapter) IgnoreBreakpoints() bool             { return a.ignoreBps }
func (a *StubAdapter) SetIgnoreBreakpoints(v bool)         { a.ignoreBps = v }
func (a *StubAdapter) StepRequest() *StepRequest           { return &a.step }

func (a *StubAdapter) InstructionProgress() (MemoryOperationInfo, uint64) {
	return a.lastOp, a.cycle
}

func (a *StubAdapter) SaveRomToDisk(filename string, asIps bool, strip CdlStripOption) error {
	a.savedTo = filename
	return nil
}

func (a *StubAdapter) DrawPartialFrame() { a.partialFrames++ }

// noBreakpoints is a BreakpointManager that never matches.
type noBreakpoints struct{}

func (noBreakpoints) Check(op MemoryOperationInfo, addr AddressInfo, executed bool) int {
	return -1
}
