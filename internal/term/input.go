package term

import (
	"slither/internal/sims/slither"

	"github.com/gdamore/tcell/v2"
)

const eventBuffer = 100

// Input pumps tcell events from a background goroutine and translates them
// on Poll.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
	out    []slither.Event
}

// NewInput enables mouse reporting and starts the event pump. The pump exits
// once the screen is finalized.
func NewInput(screen tcell.Screen) *Input {
	screen.EnableMouse()
	in := &Input{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
	}
	go in.pump()
	return in
}

func (in *Input) pump() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		default:
			// Dropped; the next motion event carries a newer position.
		}
	}
}

// Poll drains every pending event without blocking.
func (in *Input) Poll() []slither.Event {
	in.out = in.out[:0]
	w, h := in.screen.Size()
	for {
		select {
		case ev := <-in.events:
			if e, ok := translate(ev, w, h); ok {
				in.out = append(in.out, e)
			}
		default:
			return in.out
		}
	}
}

func translate(ev tcell.Event, w, h int) (slither.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return pointerAt(x, y, w, h), true
	}
	return slither.Event{}, false
}

func translateKey(key tcell.Key, r rune) (slither.Event, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return slither.Event{Kind: slither.EventQuit}, true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return slither.Event{Kind: slither.EventQuit}, true
		case 'p', 'P':
			return slither.Event{Kind: slither.EventTogglePause}, true
		case 'r', 'R':
			return slither.Event{Kind: slither.EventReset}, true
		}
	}
	return slither.Event{}, false
}

// pointerAt converts a cell to a world offset from the middle cell, the
// inverse of Renderer.Cell.
func pointerAt(x, y, w, h int) slither.Event {
	return slither.PointerMoved(float64(x-w/2)*CellWidth, float64(y-h/2)*CellHeight)
}
