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

// EventType enumerates the console-lifecycle events the Event Router fans
// out (§4.4).
type EventType int

const (
	EventStartFrame EventType = iota
	EventEndFrame
	EventGbStartFrame
	EventGbEndFrame
	EventReset
	EventStateLoaded
	EventNmi
	EventIrq
)

// OnEvent is the Event Router's single entry, called by E.
func (c *Coordinator) OnEvent(cpu CpuId, evt EventType) {
	c.forwardEventToScript(cpu, evt)

	switch evt {
	case EventStartFrame:
		main := c.consoleId.MainCpu()
		c.notify.publish(Notification{Kind: EventViewerRefresh, Cpu: main})
		c.clearFrameEvents(main)

	case EventGbStartFrame:
		// the source marks this as a workaround needing a better
		// solution; ported as-is rather than redesigned.
		if c.consoleId.IsGameboyVariant() {
			c.forwardEventToScript(cpu, EventStartFrame)
		}
		c.notify.publish(Notification{Kind: EventViewerRefresh, Cpu: Gameboy})
		c.clearFrameEvents(Gameboy)

	case EventGbEndFrame:
		if c.consoleId.IsGameboyVariant() {
			c.forwardEventToScript(cpu, EventEndFrame)
		}

	case EventReset:
		for _, id := range c.dispatch.active() {
			c.dispatch.slot(id).Adapter.Reset()
		}
		c.resetMemoryCounters()

	case EventStateLoaded:
		c.resetMemoryCounters()
	}
}

func (c *Coordinator) forwardEventToScript(cpu CpuId, evt EventType) {
	if c.script == nil || !c.script.HasScript() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logInternal("script engine panicked processing event %v: %v", evt, r)
		}
	}()
	c.script.ProcessEvent(cpu, evt)
}
