package core

// EventType is a semantic terminal event, abstracted from physical keys and signals.
type EventType int

const (
	EventNone   EventType = iota
	EventReset            // R key - clear the screen and respawn pipes
	EventExit             // Q, Ctrl+C - stop the screensaver
	EventResize           // terminal size changed
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventReset:
		return "Reset"
	case EventExit:
		return "Exit"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is delivered by a terminal backend.
// Width and Height are set for EventResize and are in terminal columns/rows.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// ctrlC is the byte a terminal in raw mode sends for Ctrl+C.
const ctrlC = 0x03

// EventForKey translates a key press to an event.
// Returns EventNone for keys without a binding.
func EventForKey(r rune) EventType {
	switch r {
	case 'q', 'Q', ctrlC:
		return EventExit
	case 'r', 'R':
		return EventReset
	}
	return EventNone
}
