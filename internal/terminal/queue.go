package terminal

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// keyQueueSize bounds the key events waiting for the frame loop.
const keyQueueSize = 16

// eventQueue carries events from listener goroutines to the frame loop.
// Resizes go through a one-slot channel holding only the latest size,
// keys through a bounded channel that drops events when full.
// Exit is a latch and is never dropped.
type eventQueue struct {
	resize chan core.Event
	keys   chan core.Event
	exit   atomic.Bool
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		resize: make(chan core.Event, 1),
		keys:   make(chan core.Event, keyQueueSize),
	}
}

// pushResize replaces any resize not yet consumed.
func (q *eventQueue) pushResize(width, height int) {
	ev := core.ResizeEvent(width, height)
	for {
		select {
		case q.resize <- ev:
			return
		default:
		}
		select {
		case <-q.resize:
		default:
		}
	}
}

// pushKey queues a key event, dropping it if the loop is behind.
// Exit latches instead of queueing.
func (q *eventQueue) pushKey(t core.EventType) {
	switch t {
	case core.EventNone:
		return
	case core.EventExit:
		q.exit.Store(true)
		return
	}
	select {
	case q.keys <- core.Event{Type: t}:
	default:
	}
}

// closeInput records that the input stream ended. Every later poll
// without a pending resize reports an exit.
func (q *eventQueue) closeInput() {
	q.exit.Store(true)
}

// poll returns a pending resize first, then a latched exit, then queued keys.
func (q *eventQueue) poll() (core.Event, bool) {
	select {
	case ev := <-q.resize:
		return ev, true
	default:
	}
	if q.exit.Load() {
		return core.Event{Type: core.EventExit}, true
	}
	select {
	case ev := <-q.keys:
		return ev, true
	default:
	}
	return core.Event{}, false
}
