package slither

// EventKind enumerates the discrete inputs the game reacts to.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventTogglePause
	EventReset
	// EventPointerMoved carries the pointer offset from the screen center.
	EventPointerMoved
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventTogglePause:
		return "toggle-pause"
	case EventReset:
		return "reset"
	case EventPointerMoved:
		return "pointer-moved"
	default:
		return "unknown"
	}
}

// Event is one input reported by an InputSource. DX and DY are only
// meaningful for EventPointerMoved.
type Event struct {
	Kind   EventKind
	DX, DY float64
}

// PointerMoved builds an EventPointerMoved for the given screen offset.
func PointerMoved(dx, dy float64) Event {
	return Event{Kind: EventPointerMoved, DX: dx, DY: dy}
}

// InputSource yields pending events without blocking. An empty result means
// nothing happened since the previous call.
type InputSource interface {
	Poll() []Event
}

// InputFunc adapts a function to InputSource.
type InputFunc func() []Event

// Poll calls f.
func (f InputFunc) Poll() []Event { return f() }
