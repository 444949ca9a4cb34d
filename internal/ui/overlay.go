//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"slither/internal/geom"
	"slither/internal/render"
	"slither/internal/sims/slither"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the game.
type Overlay struct {
	game      *slither.Game
	showSpawn bool
	showSteer bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(game *slither.Game) *Overlay {
	o := &Overlay{game: game}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlays: 1 for spawn placement, 2 for steering and
// body links.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSpawn = !o.showSpawn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSteer = !o.showSteer
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.game == nil {
		return
	}
	cam := o.game.CameraOffset()
	if o.showSpawn {
		o.drawSpawnGuides(screen, cam)
	}
	if o.showSteer {
		o.drawSteering(screen, cam)
	}
}

// drawSpawnGuides outlines the candidate ring, the head exclusion zone and a
// half-gap ring around every pellet. Two pellet rings never overlap while
// placement holds.
func (o *Overlay) drawSpawnGuides(screen *ebiten.Image, cam geom.Vec) {
	center := o.game.Center().Add(cam)
	inner, outer := o.game.PlacementRing()
	ring := color.RGBA{R: 90, G: 130, B: 170, A: 140}
	o.strokeCircle(screen, center, inner, ring)
	o.strokeCircle(screen, center, outer, ring)

	head := o.game.Player().Head().Add(cam)
	o.strokeCircle(screen, head, slither.HeadClearance, color.RGBA{R: 255, G: 120, B: 40, A: 140})

	gap := color.RGBA{R: 200, G: 200, B: 90, A: 90}
	for _, f := range o.game.Foods() {
		if !f.Active {
			continue
		}
		o.strokeCircle(screen, f.Position.Add(cam), f.Radius+slither.FoodClearance/2, gap)
	}
}

func (o *Overlay) drawSteering(screen *ebiten.Image, cam geom.Vec) {
	p := o.game.Player()
	link := color.RGBA{R: 150, G: 240, B: 250, A: 200}
	for i := 1; i < len(p.Body); i++ {
		a, b := p.Body[i-1].Add(cam), p.Body[i].Add(cam)
		o.drawLine(screen, a.X, a.Y, b.X, b.Y, 1, link)
	}
	for _, seg := range p.Body {
		s := seg.Add(cam)
		o.drawPoint(screen, s.X, s.Y, 3, link)
	}

	head := p.Head().Add(cam)
	target := p.Target.Add(cam)
	aim := color.RGBA{R: 255, G: 80, B: 80, A: 220}
	o.drawLine(screen, head.X, head.Y, target.X, target.Y, 1, aim)
	o.drawPoint(screen, target.X, target.Y, 6, aim)

	if v := p.Velocity; !v.IsZero() {
		tip := head.Add(v.Scale(0.25))
		o.drawLine(screen, head.X, head.Y, tip.X, tip.Y, 2, color.RGBA{R: 120, G: 255, B: 120, A: 220})
	}
}

func (o *Overlay) strokeCircle(screen *ebiten.Image, c geom.Vec, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(r), 1, col, true)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(render.ColorScale(col))
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(render.ColorScale(col))
	screen.DrawImage(o.pixel, op)
}
