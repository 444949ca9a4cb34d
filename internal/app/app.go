//go:build ebiten

package app

import (
	"slither/internal/core"
	"slither/internal/render"
	"slither/internal/sims/slither"
	"slither/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 220

// Game adapts a slither session to the ebiten.Game interface.
type Game struct {
	sim     *slither.Game
	painter *render.Painter
	input   *Input
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FrameClock
}

// New constructs a Game for the provided session.
func New(sim *slither.Game, fonts render.Fonts) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewPainter(size, fonts),
		input:   NewInput(size),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim),
		clock:   core.NewFrameClock(ebiten.TPS()),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	g.sim.HandleEvents(g.input)
	if !g.sim.Running() {
		return ebiten.Termination
	}
	g.sim.Tick(g.clock.Delta())

	if g.overlay != nil {
		g.overlay.Update()
	}
	g.hud.Update()
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Target(screen)
	g.sim.Render(g.painter)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W, s.H
}
