package slither

import (
	"image/color"
	"math"

	"slither/internal/geom"
)

const (
	baseSpeed        = 150.0
	maxSpeed         = 200.0
	speedPerGrowth   = 2.0
	playerRadius     = 8.0
	linkDistance     = 15.0
	steerDeadZone    = 5.0
	minSegmentRadius = 3.0
	scorePerGrowth   = 10
	startSegments    = 3
	startSpacing     = 20.0

	// selfCollisionSkip is the first body index tested against the head.
	selfCollisionSkip = 4
)

var playerColor = color.RGBA{R: 50, G: 255, B: 100, A: 255}

// Player is the snake: a steered head followed by a chain of segments.
// Body[0] is the head and equals Position after every update.
type Player struct {
	Position geom.Vec
	Velocity geom.Vec
	Target   geom.Vec
	Speed    float64
	Radius   float64
	Score    int
	Alive    bool
	Body     []geom.Vec

	start geom.Vec
}

// NewPlayer returns a live player with a three-segment body at start.
func NewPlayer(start geom.Vec) *Player {
	p := &Player{start: start, Radius: playerRadius}
	p.Reset()
	return p
}

// Reset restores the starting state in place.
func (p *Player) Reset() {
	p.Position = p.start
	p.Target = p.start
	p.Velocity = geom.Vec{}
	p.Speed = baseSpeed
	p.Radius = playerRadius
	p.Score = 0
	p.Alive = true
	p.Body = p.Body[:0]
	for i := 0; i < startSegments; i++ {
		p.Body = append(p.Body, p.start.Sub(geom.V(startSpacing*float64(i), 0)))
	}
}

// Start returns the position the player resets to.
func (p *Player) Start() geom.Vec { return p.start }

// Head returns the head segment, falling back to Position for an empty body.
func (p *Player) Head() geom.Vec {
	if len(p.Body) == 0 {
		return p.Position
	}
	return p.Body[0]
}

// SetTarget changes the steering goal.
func (p *Player) SetTarget(target geom.Vec) { p.Target = target }

// Update steers toward the target, integrates the head and drags the body.
func (p *Player) Update(dt float64) {
	if !p.Alive {
		return
	}
	dir := p.Target.Sub(p.Position)
	if dir.LenSq() > steerDeadZone*steerDeadZone {
		p.Velocity = dir.Normalize().Scale(p.Speed)
	} else {
		p.Velocity = geom.Vec{}
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.updateBody()
}

// updateBody pins the head to Position and sweeps once toward the tail,
// pulling any segment further than linkDistance back onto the link.
func (p *Player) updateBody() {
	if len(p.Body) == 0 {
		return
	}
	p.Body[0] = p.Position
	for i := 1; i < len(p.Body); i++ {
		link := p.Body[i-1].Sub(p.Body[i])
		if link.LenSq() > linkDistance*linkDistance {
			p.Body[i] = p.Body[i-1].Sub(link.Normalize().Scale(linkDistance))
		}
	}
}

// Grow scores a pellet, extends the tail by one link and speeds up.
func (p *Player) Grow() {
	p.Score += scorePerGrowth

	switch n := len(p.Body); {
	case n > 1:
		last, prev := p.Body[n-1], p.Body[n-2]
		dir := last.Sub(prev).Normalize()
		p.Body = append(p.Body, last.Add(dir.Scale(linkDistance)))
	case n == 1:
		dir := p.Body[0].Sub(p.Target).Normalize()
		p.Body = append(p.Body, p.Body[0].Add(dir.Scale(linkDistance)))
	default:
		p.Body = append(p.Body, p.Position)
	}

	p.Speed = math.Min(p.Speed+speedPerGrowth, maxSpeed)
}

// SegmentRadius returns the tapered radius of body segment i.
func (p *Player) SegmentRadius(i int) float64 {
	n := len(p.Body)
	if n == 0 {
		return p.Radius
	}
	r := p.Radius * (1 - float64(i)/(2*float64(n)))
	return math.Max(r, minSegmentRadius)
}

// SegmentRadii returns SegmentRadius for every segment, head first.
func (p *Player) SegmentRadii() []float64 {
	radii := make([]float64, len(p.Body))
	for i := range radii {
		radii[i] = p.SegmentRadius(i)
	}
	return radii
}

// SegmentColors returns the body gradient: full opacity at the head fading
// by 50 per segment down to 100.
func (p *Player) SegmentColors() []color.RGBA {
	colors := make([]color.RGBA, len(p.Body))
	for i := range colors {
		c := playerColor
		alpha := 255 - 50*i
		if alpha < 100 {
			alpha = 100
		}
		c.A = uint8(alpha)
		colors[i] = c
	}
	return colors
}

// CheckSelfCollision reports whether the head overlaps its own body. The
// first few segments always sit near the head and are skipped.
func (p *Player) CheckSelfCollision() bool {
	if len(p.Body) < selfCollisionSkip {
		return false
	}
	head := p.Body[0]
	for i := selfCollisionSkip; i < len(p.Body); i++ {
		if head.Distance(p.Body[i]) < p.Radius+p.SegmentRadius(i) {
			return true
		}
	}
	return false
}

// CheckWallCollision reports whether the head pokes outside the arena.
func (p *Player) CheckWallCollision(center geom.Vec, arenaRadius float64) bool {
	return p.Position.Distance(center)+p.Radius > arenaRadius
}

// LimitToMap projects the head back inside the arena, leaving a radius-wide
// margin, and re-syncs the body when it moved.
func (p *Player) LimitToMap(center geom.Vec, arenaRadius float64) {
	offset := p.Position.Sub(center)
	if offset.Len()+p.Radius <= arenaRadius {
		return
	}
	reach := math.Max(arenaRadius-p.Radius, 0)
	p.Position = center.Add(offset.Normalize().Scale(reach))
	p.updateBody()
}
