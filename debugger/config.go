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

	flag "github.com/spf13/pflag"
)

// Config holds every runtime-tunable knob the coordinator consults. The
// zero value is not valid; use NewConfig for sensible defaults.
type Config struct {
	// SingleBreakpointPerInstruction gates whether the source adapter's
	// IgnoreBreakpoints is set on park, suppressing a second break for the
	// same instruction (§4.3 step 3, scenario 4).
	SingleBreakpointPerInstruction bool

	// DrawPartialFrameOnBreak asks the source adapter to draw a partial
	// frame on park, for UI display mid-instruction.
	DrawPartialFrameOnBreak bool

	// BreakImmediatelyFlags gates BreakImmediately per BreakSource; a
	// reason absent from the map behaves as false (no-op).
	BreakImmediatelyFlags map[BreakSource]bool

	// PollActiveInterval/PollIdleInterval are the SleepUntilResume poll
	// periods (§4.3 step 4), 1ms/10ms by default. Tests override these to
	// avoid waiting on real sleeps.
	PollActiveInterval time.Duration
	PollIdleInterval   time.Duration

	// LogCapacity bounds the coordinator's own Log Buffer (§4.7).
	LogCapacity int

	// RunSelfTestOnStart runs a small fixed battery of expression
	// evaluations against a throwaway evaluator at construction time,
	// logging failures rather than panicking (§9 open question).
	RunSelfTestOnStart bool

	// MetricsAddr, if non-empty, serves the statsview metrics dashboard
	// (§10.3) on this address. Empty disables it.
	MetricsAddr string

	// TeardownMaxIterations bounds Close's "while(executionStopped)
	// Run()" loop so an emulation thread that has already exited
	// abnormally cannot hang teardown forever (§9 open question).
	TeardownMaxIterations int
}

// NewConfig returns the coordinator's default configuration.
func NewConfig() Config {
	return Config{
		SingleBreakpointPerInstruction: true,
		DrawPartialFrameOnBreak:        true,
		BreakImmediatelyFlags:          map[BreakSource]bool{},
		PollActiveInterval:             time.Millisecond,
		PollIdleInterval:               10 * time.Millisecond,
		LogCapacity:                    1000,
		TeardownMaxIterations:          1000,
	}
}

// RegisterFlags binds every Config field except BreakImmediatelyFlags to a
// flag on fs, so a front-end can build a Config from the command line with
// a single Parse call. BreakImmediatelyFlags has no flag and keeps whatever
// the caller set. Call this on the result of NewConfig so defaults survive
// unset flags.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.SingleBreakpointPerInstruction, "single-breakpoint-per-instruction", c.SingleBreakpointPerInstruction, "suppress a second break on the same instruction")
	fs.BoolVar(&c.DrawPartialFrameOnBreak, "draw-partial-frame-on-break", c.DrawPartialFrameOnBreak, "ask the source adapter to draw a partial frame on park")
	fs.DurationVar(&c.PollActiveInterval, "poll-active-interval", c.PollActiveInterval, "sleepUntilResume poll period while a break request is outstanding")
	fs.DurationVar(&c.PollIdleInterval, "poll-idle-interval", c.PollIdleInterval, "sleepUntilResume poll period otherwise")
	fs.IntVar(&c.LogCapacity, "log-capacity", c.LogCapacity, "maximum retained lines in the coordinator's log buffer")
	fs.BoolVar(&c.RunSelfTestOnStart, "run-self-test-on-start", c.RunSelfTestOnStart, "run a fixed expression-evaluator self-test at construction")
	fs.StringVar(&c.MetricsAddr, "metrics", c.MetricsAddr, "address to serve the metrics dashboard on, e.g. :6060")
	fs.IntVar(&c.TeardownMaxIterations, "teardown-max-iterations", c.TeardownMaxIterations, "bound on Close's release-and-wait loop")
}
