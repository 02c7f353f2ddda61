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

// Package debugger implements the central debugger coordinator shared by
// every emulated console and coprocessor: dispatch to per-CPU debug
// adapters, the break/suspend/step protocol between the emulation thread
// and external controllers, trace merging, and the small set of
// accessors a UI or script host needs.
package debugger

// CpuId identifies one of the CPU cores the coordinator can drive. The set
// is closed: every dispatch table in this package is a dense array indexed
// by CpuId, and naming a CpuId outside this set from a hot-path entry point
// is a programmer error, not a runtime input (see OnPpuRead and friends).
type CpuId int

const (
	Snes CpuId = iota
	Spc
	NecDsp
	Sa1
	Gsu
	Cx4
	Gameboy
	Nes
	Pce

	numCpuId
)

func (c CpuId) String() string {
	switch c {
	case Snes:
		return "SNES"
	case Spc:
		return "SPC700"
	case NecDsp:
		return "NEC DSP"
	case Sa1:
		return "SA-1"
	case Gsu:
		return "SuperFX"
	case Cx4:
		return "Cx4"
	case Gameboy:
		return "Game Boy"
	case Nes:
		return "NES"
	case Pce:
		return "PC Engine"
	default:
		return "unknown"
	}
}

// HasIdleCycles reports whether c has observable idle cycles. Only SNES and
// SA-1 do; OnIdleCycle for any other CpuId is a programmer error (P9).
func (c CpuId) HasIdleCycles() bool {
	return c == Snes || c == Sa1
}

// HasPpu reports whether c hosts a PPU of its own. PPU hook entry points
// (OnPpuRead/Write/Cycle) are only valid for these CpuIds (P9).
func (c CpuId) HasPpu() bool {
	switch c {
	case Snes, Gameboy, Nes, Pce:
		return true
	default:
		return false
	}
}

// IsSnesFamily reports whether c is the SNES CPU or one of its coprocessors.
// GetPpuState/SetPpuState for any member of this family funnel through the
// SNES adapter (§4.6).
func (c CpuId) IsSnesFamily() bool {
	switch c {
	case Snes, Spc, NecDsp, Sa1, Gsu, Cx4:
		return true
	default:
		return false
	}
}

// ConsoleId identifies the host machine. It determines which CpuIds are
// active and which of them is the "main" CPU (the one that receives
// frame-level event routing, §4.4, and is the default target of
// SaveRomToDisk, §6).
type ConsoleId int

const (
	ConsoleSnes ConsoleId = iota
	ConsoleGameboy
	ConsoleNes
	ConsolePce
)

func (c ConsoleId) String() string {
	switch c {
	case ConsoleSnes:
		return "SNES"
	case ConsoleGameboy:
		return "Game Boy"
	case ConsoleNes:
		return "NES"
	case ConsolePce:
		return "PC Engine"
	default:
		return "unknown"
	}
}

// CpuIds returns the CpuIds active for this console, main CPU first. The
// list is fixed per console: for the SNES it is the SNES CPU and the SPC700
// only, and cartridge coprocessors (NEC DSP, SA-1, SuperFX, Cx4) are never
// listed.
func (c ConsoleId) CpuIds() []CpuId {
	switch c {
	case ConsoleSnes:
		return []CpuId{Snes, Spc}
	case ConsoleGameboy:
		return []CpuId{Gameboy}
	case ConsoleNes:
		return []CpuId{Nes}
	case ConsolePce:
		return []CpuId{Pce}
	default:
		return nil
	}
}

// MainCpu returns the main CpuId for the console (GLOSSARY: "Main CPU").
func (c ConsoleId) MainCpu() CpuId {
	ids := c.CpuIds()
	if len(ids) == 0 {
		panic("debugger: console has no active CpuIds")
	}
	return ids[0]
}

// IsGameboyVariant reports whether c is the Game Boy console. The SGB case
// (a Game Boy adapter inside an SNES console) reports false here;
// SaveRomToDisk detects it separately by looking for a Gameboy slot (§9).
func (c ConsoleId) IsGameboyVariant() bool {
	return c == ConsoleGameboy
}
