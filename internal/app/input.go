//go:build ebiten

package app

import (
	"slither/internal/core"
	"slither/internal/sims/slither"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input reads the keyboard and cursor once per Poll.
type Input struct {
	cx, cy     float64
	lastX      int
	lastY      int
	seenCursor bool
	events     []slither.Event
}

// NewInput returns an input source for a screen of the given size.
func NewInput(size core.Size) *Input {
	cx, cy := size.Center()
	return &Input{cx: cx, cy: cy}
}

// Poll reports key presses since the previous frame and a pointer event when
// the cursor moved. The returned slice is reused by the next call.
func (in *Input) Poll() []slither.Event {
	in.events = in.events[:0]
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.events = append(in.events, slither.Event{Kind: slither.EventQuit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.events = append(in.events, slither.Event{Kind: slither.EventTogglePause})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.events = append(in.events, slither.Event{Kind: slither.EventReset})
	}

	x, y := ebiten.CursorPosition()
	if !in.seenCursor || x != in.lastX || y != in.lastY {
		in.seenCursor = true
		in.lastX, in.lastY = x, y
		in.events = append(in.events, slither.PointerMoved(float64(x)-in.cx, float64(y)-in.cy))
	}
	return in.events
}
