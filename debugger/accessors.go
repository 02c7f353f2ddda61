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

import "github.com/jetsetilly/coordinator/errors"

// EvaluateExpression evaluates expr against cpu's adapter. If useCache is
// true the adapter-bound cached evaluator is used (which may memoize
// sub-trees); otherwise a throwaway evaluator is built for the slot's
// adapter by the coordinator's EvaluatorFactory. On an absent CpuId it
// returns EvalInvalid rather than
// erroring (§7: "return a safe default").
func (c *Coordinator) EvaluateExpression(expr string, cpu CpuId, useCache bool) (EvalResult, error) {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return EvalResult{Type: EvalInvalid}, nil
	}

	eval := slot.Cached
	if !useCache {
		if c.newEvaluator == nil {
			return EvalResult{Type: EvalInvalid}, nil
		}
		eval = c.newEvaluator(slot.Adapter)
	}
	if eval == nil {
		return EvalResult{Type: EvalInvalid}, nil
	}

	result, err := eval.Evaluate(expr)
	if err != nil {
		return EvalResult{Type: EvalInvalid}, errors.Errorf(errors.ExpressionError, err)
	}
	return result, nil
}

// GetCpuState returns cpu's register state as the adapter's own byte slice
// (not a copy), or nil on an absent CpuId.
func (c *Coordinator) GetCpuState(cpu CpuId) []byte {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return nil
	}
	return slot.Adapter.GetState()
}

// SetCpuState writes cpu's register state from a caller-provided buffer,
// under a scoped suspend (§5).
func (c *Coordinator) SetCpuState(cpu CpuId, state []byte) {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return
	}
	c.withSuspend(func() {
		slot.Adapter.SetState(state)
	})
}

// snesFamilyAdapter returns the SNES adapter that every member of the SNES
// family (Snes/Spc/NecDsp/Sa1/Gsu/Cx4) funnels PPU state access through
// (§4.6), regardless of which family member cpu names.
func (c *Coordinator) snesFamilyAdapter(cpu CpuId) *AdapterSlot {
	if cpu.IsSnesFamily() {
		return c.dispatch.slot(Snes)
	}
	return c.dispatch.slot(cpu)
}

// GetPpuState returns cpu's PPU state, funneling SNES-family CpuIds
// through the SNES adapter.
func (c *Coordinator) GetPpuState(cpu CpuId) []byte {
	slot := c.snesFamilyAdapter(cpu)
	if slot == nil {
		return nil
	}
	return slot.Adapter.GetPpuState()
}

// SetPpuState writes cpu's PPU state, funneling SNES-family CpuIds through
// the SNES adapter, under a scoped suspend.
func (c *Coordinator) SetPpuState(cpu CpuId, state []byte) {
	slot := c.snesFamilyAdapter(cpu)
	if slot == nil {
		return
	}
	c.withSuspend(func() {
		slot.Adapter.SetPpuState(state)
	})
}

// GetProgramCounter returns cpu's program counter, or 0 on an absent
// CpuId.
func (c *Coordinator) GetProgramCounter(cpu CpuId, getInstPc bool) int {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return 0
	}
	return slot.Adapter.GetProgramCounter(getInstPc)
}

// SetProgramCounter is rejected (silently, §7) unless the adapter's
// AllowChangeProgramCounter is true - i.e. only between OnInstruction
// entry and exit for cpu (P5).
func (c *Coordinator) SetProgramCounter(cpu CpuId, addr int) {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return
	}
	slot.Adapter.SetProgramCounter(addr)
}

// GetInstructionProgress returns the most recently observed memory op and
// current cycle count for cpu, for mid-instruction UI display.
func (c *Coordinator) GetInstructionProgress(cpu CpuId) (MemoryOperationInfo, uint64) {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return MemoryOperationInfo{}, 0
	}
	return slot.Adapter.InstructionProgress()
}

// HasCpuType reports whether cpu is active in the current console.
func (c *Coordinator) HasCpuType(cpu CpuId) bool {
	return c.dispatch.has(cpu)
}

// GetDebuggerFeatures returns cpu's supported features, or an empty set on
// an absent CpuId (§7: "empty feature set").
func (c *Coordinator) GetDebuggerFeatures(cpu CpuId) Features {
	slot := c.dispatch.slot(cpu)
	if slot == nil {
		return Features{}
	}
	return slot.Adapter.GetSupportedFeatures()
}
