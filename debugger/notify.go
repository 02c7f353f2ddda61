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

	"github.com/jetsetilly/coordinator/logger"
)

// NotificationKind tags the three notification types the coordinator
// produces (§6).
type NotificationKind int

const (
	CodeBreak NotificationKind = iota
	DebuggerResumed
	EventViewerRefresh
)

func (k NotificationKind) String() string {
	switch k {
	case CodeBreak:
		return "CodeBreak"
	case DebuggerResumed:
		return "DebuggerResumed"
	case EventViewerRefresh:
		return "EventViewerRefresh"
	default:
		return "unknown"
	}
}

// Notification is a single fire-and-forget event delivered to subscribers.
// Break carries the BreakEvent for a CodeBreak notification and is nil
// otherwise. Cpu carries the target CpuId for an EventViewerRefresh
// notification.
type Notification struct {
	Kind  NotificationKind
	Break *BreakEvent
	Cpu   CpuId
}

// notifier is a minimal typed pub/sub over Go channels. publish never
// blocks: a full subscriber channel drops the notification and logs it,
// honoring the fire-and-forget policy of §7 so a slow UI can never stall
// the emulation thread.
type notifier struct {
	mu      sync.Mutex
	subs    map[int]chan Notification
	next    int
	dropped atomic.Uint64
}

func newNotifier() *notifier {
	return &notifier{subs: map[int]chan Notification{}}
}

// Subscribe returns a receive channel (buffered, so a burst of
// notifications doesn't immediately drop) and an unsubscribe func.
func (n *notifier) Subscribe() (<-chan Notification, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan Notification, 16)
	n.subs[id] = ch

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

func (n *notifier) publish(note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, ch := range n.subs {
		select {
		case ch <- note:
		default:
			n.dropped.Add(1)
			logger.Logf(logger.Allow, "debugger", "dropped %s notification for subscriber %d: channel full", note.Kind, id)
		}
	}
}

// droppedCount reports the running total of notifications dropped because a
// subscriber's channel was full - backing the "notifications dropped"
// dashboard gauge (§10.3).
func (n *notifier) droppedCount() uint64 {
	return n.dropped.Load()
}
