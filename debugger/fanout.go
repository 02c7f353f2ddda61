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

// This file is the Instrumentation Fan-out (§4.2): the hot-path entry
// points called by the emulation thread (E) once per executed instruction,
// memory access, idle cycle, interrupt and PPU cycle. Every entry point
// here is a direct array index into the dispatch table plus one interface
// call, with no heap allocation. OnRead and OnWrite also take the
// coordinator's mutex to bump the per-CPU memory-access counter; the other
// entry points take no lock, apart from the notification fan-out a break
// may trigger deeper inside the adapter call.
//
// ProcessBreakConditions/ProcessPredictiveBreakpoint are deliberately not
// called from this layer: in the source this ports, they're invoked from
// inside the per-CPU adapter's own ProcessInstruction/ProcessRead/
// ProcessWrite, once the adapter has updated its own step/breakpoint
// state. An Adapter implementation is expected to hold a reference to the
// Coordinator and call back into it from those methods; StubAdapter leaves this to its caller so
// tests can sequence OnInstruction and ProcessBreakConditions explicitly.

// ScriptEngine receives every memory operation the coordinator observes,
// when a script is loaded. Its internals are out of scope (§1); the
// coordinator only forwards and recovers from panics (§7, §9).
type ScriptEngine interface {
	HasScript() bool
	ProcessMemoryOperation(addr AddressInfo, value int, opType MemoryOperationType, cpu CpuId)
	ProcessEvent(cpu CpuId, evt EventType)
}

func (c *Coordinator) forwardToScript(addr AddressInfo, value int, opType MemoryOperationType, cpu CpuId) {
	if c.script == nil || !c.script.HasScript() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logInternal("script engine panicked processing memory operation: %v", r)
		}
	}()
	c.script.ProcessMemoryOperation(addr, value, opType, cpu)
}

// OnInstruction is called at the boundary between two instructions.
func (c *Coordinator) OnInstruction(cpu CpuId) {
	assertOnEmulationThread()
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return
	}
	a := slot.Adapter
	a.SetIgnoreBreakpoints(false)
	a.SetAllowChangeProgramCounter(true)
	a.ProcessInstruction()
	a.SetAllowChangeProgramCounter(false)
}

// OnRead is called on every CPU bus read.
func (c *Coordinator) OnRead(cpu CpuId, addr AddressInfo, value int, opType MemoryOperationType) {
	assertOnEmulationThread()
	c.recordMemoryAccess(cpu)
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessRead(addr, value, opType)
	}
	c.forwardToScript(addr, value, opType, cpu)
}

// OnWrite is called on every CPU bus write.
func (c *Coordinator) OnWrite(cpu CpuId, addr AddressInfo, value int, opType MemoryOperationType) {
	assertOnEmulationThread()
	c.recordMemoryAccess(cpu)
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessWrite(addr, value, opType)
	}
	c.forwardToScript(addr, value, opType, cpu)
}

// OnIdleCycle is only ever called for cpu where HasIdleCycles() is true
// (SNES, SA-1); any other CpuId is a programmer error (P9).
func (c *Coordinator) OnIdleCycle(cpu CpuId) {
	assertOnEmulationThread()
	if !cpu.HasIdleCycles() {
		panic("debugger: OnIdleCycle called for a CpuId with no observable idle cycles")
	}
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessIdleCycle()
	}
}

// OnInterrupt forwards to the adapter, then raises an Event Router event of
// kind Nmi or Irq.
func (c *Coordinator) OnInterrupt(cpu CpuId, originalPc, currentPc int, forNmi bool) {
	assertOnEmulationThread()
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessInterrupt(originalPc, currentPc, forNmi)
	}
	if forNmi {
		c.OnEvent(cpu, EventNmi)
	} else {
		c.OnEvent(cpu, EventIrq)
	}
}

// OnPpuRead/Write/Cycle are only ever called for cpu where HasPpu() is
// true; any other CpuId is a programmer error (P9).
func (c *Coordinator) OnPpuRead(cpu CpuId, addr AddressInfo, value int, opType MemoryOperationType) {
	assertOnEmulationThread()
	if !cpu.HasPpu() {
		panic("debugger: OnPpuRead called for a CpuId with no PPU")
	}
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessPpuRead(addr, value, opType)
	}
}

func (c *Coordinator) OnPpuWrite(cpu CpuId, addr AddressInfo, value int, opType MemoryOperationType) {
	assertOnEmulationThread()
	if !cpu.HasPpu() {
		panic("debugger: OnPpuWrite called for a CpuId with no PPU")
	}
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessPpuWrite(addr, value, opType)
	}
}

func (c *Coordinator) OnPpuCycle(cpu CpuId) {
	assertOnEmulationThread()
	if !cpu.HasPpu() {
		panic("debugger: OnPpuCycle called for a CpuId with no PPU")
	}
	if slot := c.dispatch.slot(cpu); slot != nil {
		slot.Adapter.ProcessPpuCycle()
	}
}
