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

package debugger_test

import (
	"testing"

	"github.com/jetsetilly/coordinator/debugger"
	"github.com/jetsetilly/coordinator/test"
)

func TestHasIdleCycles(t *testing.T) {
	test.ExpectSuccess(t, debugger.Snes.HasIdleCycles())
	test.ExpectSuccess(t, debugger.Sa1.HasIdleCycles())
	test.ExpectFailure(t, debugger.Gameboy.HasIdleCycles())
	test.ExpectFailure(t, debugger.Spc.HasIdleCycles())
}

func TestHasPpu(t *testing.T) {
	test.ExpectSuccess(t, debugger.Snes.HasPpu())
	test.ExpectSuccess(t, debugger.Gameboy.HasPpu())
	test.ExpectSuccess(t, debugger.Nes.HasPpu())
	test.ExpectSuccess(t, debugger.Pce.HasPpu())
	test.ExpectFailure(t, debugger.Spc.HasPpu())
	test.ExpectFailure(t, debugger.Sa1.HasPpu())
}

func TestIsSnesFamily(t *testing.T) {
	for _, id := range []debugger.CpuId{debugger.Snes, debugger.Spc, debugger.NecDsp, debugger.Sa1, debugger.Gsu, debugger.Cx4} {
		test.ExpectSuccess(t, id.IsSnesFamily())
	}
	test.ExpectFailure(t, debugger.Nes.IsSnesFamily())
	test.ExpectFailure(t, debugger.Gameboy.IsSnesFamily())
}

func TestConsoleCpuIds(t *testing.T) {
	test.ExpectEquality(t, debugger.ConsoleSnes.CpuIds(), []debugger.CpuId{debugger.Snes, debugger.Spc})
	test.ExpectEquality(t, debugger.ConsoleGameboy.CpuIds(), []debugger.CpuId{debugger.Gameboy})
	test.ExpectEquality(t, debugger.ConsoleNes.CpuIds(), []debugger.CpuId{debugger.Nes})
	test.ExpectEquality(t, debugger.ConsolePce.CpuIds(), []debugger.CpuId{debugger.Pce})
}

func TestMainCpu(t *testing.T) {
	test.ExpectEquality(t, debugger.ConsoleSnes.MainCpu(), debugger.Snes)
	test.ExpectEquality(t, debugger.ConsoleGameboy.MainCpu(), debugger.Gameboy)
}

func TestMainCpuPanicsOnUnknownConsole(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic for an unknown ConsoleId")
		}
	}()
	var unknown debugger.ConsoleId = 99
	unknown.MainCpu()
}

func TestIsGameboyVariant(t *testing.T) {
	test.ExpectSuccess(t, debugger.ConsoleGameboy.IsGameboyVariant())
	test.ExpectFailure(t, debugger.ConsoleSnes.IsGameboyVariant())
}
