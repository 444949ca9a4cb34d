//go:build ebiten

package render

import (
	"fmt"
	"image/color"
	"math"

	"slither/internal/core"
	"slither/internal/geom"
	"slither/internal/sims/slither"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Painter draws game frames onto an ebiten image. Point it at the frame's
// screen with Target before handing it to slither.Game.Render.
type Painter struct {
	size   core.Size
	fonts  Fonts
	screen *ebiten.Image
}

// NewPainter constructs a Painter for a screen of the given size.
func NewPainter(size core.Size, fonts Fonts) *Painter {
	if fonts.Score == nil {
		fonts = FallbackFonts()
	}
	return &Painter{size: size, fonts: fonts}
}

// Target sets the image the next frame is drawn onto.
func (p *Painter) Target(screen *ebiten.Image) { p.screen = screen }

// BeginFrame clears the target to the background color.
func (p *Painter) BeginFrame() {
	if p.screen == nil {
		return
	}
	p.screen.Fill(Background)
}

// EndFrame releases the target. Ebiten presents the image itself.
func (p *Painter) EndFrame() { p.screen = nil }

// DrawArenaBoundary strokes the fading arena edge and eight short spokes.
func (p *Painter) DrawArenaBoundary(center geom.Vec, radius float64) {
	if p.screen == nil {
		return
	}
	cx, cy := float32(center.X), float32(center.Y)
	radii, alphas := ArenaRings(radius)
	for i, r := range radii {
		vector.StrokeCircle(p.screen, cx, cy, float32(r), 1, WithAlpha(ArenaColor, alphas[i]), true)
	}
	spoke := WithAlpha(ArenaColor, 30)
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		from := center.Add(geom.FromAngle(angle, radius-50))
		to := center.Add(geom.FromAngle(angle, radius))
		vector.StrokeLine(p.screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, spoke, true)
	}
}

// DrawFood fills the pellet, skipping pellets entirely off screen.
func (p *Painter) DrawFood(f *slither.Food, cam geom.Vec) {
	if p.screen == nil || f == nil || !f.Active {
		return
	}
	pos := f.Position.Add(cam)
	if !p.visible(pos, f.Radius) {
		return
	}
	vector.DrawFilledCircle(p.screen, float32(pos.X), float32(pos.Y), float32(f.Radius), f.Color, true)
	if f.Highlight() {
		vector.DrawFilledCircle(p.screen, float32(pos.X), float32(pos.Y), float32(f.Radius/2), slither.GoldenHighlight, true)
	}
}

// DrawPlayerBody fills every segment tail first so the head ends on top.
func (p *Painter) DrawPlayerBody(segments []geom.Vec, radii []float64, colors []color.RGBA, cam geom.Vec) {
	if p.screen == nil {
		return
	}
	for i := len(segments) - 1; i >= 0; i-- {
		if i >= len(radii) || i >= len(colors) {
			continue
		}
		pos := segments[i].Add(cam)
		if !p.visible(pos, radii[i]) {
			continue
		}
		vector.DrawFilledCircle(p.screen, float32(pos.X), float32(pos.Y), float32(radii[i]), colors[i], true)
	}
}

// DrawScoreAndStatus writes the score, the game-over banner and the
// control hints.
func (p *Painter) DrawScoreAndStatus(score int, alive bool) {
	if p.screen == nil {
		return
	}
	p.drawText(fmt.Sprintf("Score: %d", score), p.fonts.Score, 20, 20, TextColor)

	if !alive {
		w, h := p.size.W, p.size.H
		p.drawText("GAME OVER", p.fonts.Title, w/2-100, h/2-50, GameOver)
		p.drawText("Press R to restart", p.fonts.Hint, w/2-150, h/2+20, TextColor)
	}

	hint := WithAlpha(TextColor, 150)
	p.drawText("Steer with the mouse", p.fonts.Hint, 20, p.size.H-60, hint)
	p.drawText("Eat the dots to grow!", p.fonts.Hint, 20, p.size.H-40, hint)
}

// drawText places s with its top-left corner at (x, y).
func (p *Painter) drawText(s string, face font.Face, x, y int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(p.screen, s, face, x, y+ascent, clr)
}

func (p *Painter) visible(pos geom.Vec, r float64) bool {
	return pos.X >= -r && pos.Y >= -r && pos.X <= float64(p.size.W)+r && pos.Y <= float64(p.size.H)+r
}
