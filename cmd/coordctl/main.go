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

// Command coordctl is a raw-terminal smoke-test harness for the debugger
// coordinator (§10.5). It wires up a Coordinator for a chosen console using
// StubAdapter in place of real CPU cores, drives it from single keystrokes,
// and prints every notification it publishes - useful for exercising the
// Break Controller and Event Router by hand without a full emulator attached.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/term"
	flag "github.com/spf13/pflag"

	"github.com/jetsetilly/coordinator/debugger"
	"github.com/jetsetilly/coordinator/logger"
)

var consoleNames = map[string]debugger.ConsoleId{
	"snes": debugger.ConsoleSnes,
	"nes":  debugger.ConsoleNes,
	"gb":   debugger.ConsoleGameboy,
	"pce":  debugger.ConsolePce,
}

func main() {
	console := flag.StringP("console", "c", "nes", "console to attach (snes, nes, gb, pce)")
	cfg := debugger.NewConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	consoleId, ok := consoleNames[*console]
	if !ok {
		fmt.Fprintf(os.Stderr, "coordctl: unknown console %q\n", *console)
		os.Exit(1)
	}

	coord := debugger.NewCoordinator(consoleId, cfg, func(id debugger.CpuId) debugger.Adapter {
		return debugger.NewStubAdapter(id)
	}, nil)
	coord.ServeMetrics()

	notifications, unsub := coord.Subscribe()
	defer unsub()

	go func() {
		for note := range notifications {
			switch note.Kind {
			case debugger.CodeBreak:
				fmt.Printf("\r\nbreak: cpu=%s\r\n", note.Break.Cpu)
			case debugger.DebuggerResumed:
				fmt.Printf("\r\nresumed\r\n")
			case debugger.EventViewerRefresh:
				fmt.Printf("\r\nframe: cpu=%s\r\n", note.Cpu)
			}
		}
	}()

	runInteractive(coord, consoleId)
}

// runInteractive puts the controlling terminal into raw mode and maps
// single keystrokes onto Break Controller operations:
//
//	r  Run every adapter (clears any pending break)
//	s  Step the console's main CPU one instruction
//	b  RequestBreak(true) - ask the console to break at the next boundary
//	l  print the Log Buffer
//	q  quit
func runInteractive(coord *debugger.Coordinator, consoleId debugger.ConsoleId) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coordctl: could not open controlling terminal: %v\n", err)
		fmt.Fprintf(os.Stderr, "coordctl: falling back to a single Run/Close cycle\n")
		coord.Run()
		coord.Close()
		return
	}
	defer t.Restore()
	defer t.Close()

	fmt.Printf("coordctl attached to %s (r=run s=step b=break l=log q=quit)\r\n", consoleId)

	buf := make([]byte, 1)
	for {
		n, err := t.Read(buf)
		if err != nil || n == 0 {
			break
		}
		switch buf[0] {
		case 'r':
			coord.Run()
		case 's':
			if err := coord.Step(consoleId.MainCpu(), 1, debugger.StepInto); err != nil {
				logger.Logf(logger.Allow, "coordctl", "step failed: %v", err)
			}
		case 'b':
			coord.RequestBreak(true)
		case 'l':
			fmt.Printf("\r\n%s\r\n", coord.GetLog())
		case 'q':
			coord.Close()
			return
		}
	}
}
