package slither

import (
	"math"
	"testing"

	"slither/internal/core"
	"slither/internal/geom"
)

func TestNewPlayerStartsWithThreeSegments(t *testing.T) {
	p := NewPlayer(geom.V(400, 300))
	want := []geom.Vec{geom.V(400, 300), geom.V(380, 300), geom.V(360, 300)}
	if len(p.Body) != len(want) {
		t.Fatalf("len(Body) = %d, want %d", len(p.Body), len(want))
	}
	for i := range want {
		if p.Body[i] != want[i] {
			t.Fatalf("Body[%d] = %v, want %v", i, p.Body[i], want[i])
		}
	}
	if p.Speed != 150 || p.Radius != 8 || p.Score != 0 || !p.Alive {
		t.Fatalf("unexpected initial state %+v", p)
	}
}

func TestUpdateAtGoalStaysPut(t *testing.T) {
	for _, dt := range []float64{0, 0.001, 1.0 / 60, 0.5, 3} {
		p := NewPlayer(geom.V(400, 300))
		p.SetTarget(geom.V(400, 300))
		p.Update(dt)
		if !p.Velocity.IsZero() {
			t.Fatalf("dt=%v: velocity = %v, want zero", dt, p.Velocity)
		}
		if p.Position != geom.V(400, 300) {
			t.Fatalf("dt=%v: position moved to %v", dt, p.Position)
		}
	}
}

func TestUpdateDeadZone(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	p.SetTarget(geom.V(3, 4))
	p.Update(1)
	if !p.Velocity.IsZero() || p.Position != (geom.Vec{}) {
		t.Fatalf("target inside the dead zone moved the player: v=%v pos=%v", p.Velocity, p.Position)
	}
}

func TestUpdateSteersAndDragsBody(t *testing.T) {
	p := NewPlayer(geom.V(400, 300))
	p.SetTarget(geom.V(500, 300))
	p.Update(0.1)

	if math.Abs(p.Velocity.X-150) > 1e-9 || p.Velocity.Y != 0 {
		t.Fatalf("velocity = %v, want (150, 0)", p.Velocity)
	}
	if math.Abs(p.Position.X-415) > 1e-9 || p.Position.Y != 300 {
		t.Fatalf("position = %v, want (415, 300)", p.Position)
	}
	if p.Body[0] != p.Position {
		t.Fatalf("Body[0] = %v, want head %v", p.Body[0], p.Position)
	}
	for i := 1; i < len(p.Body); i++ {
		if d := p.Body[i].Distance(p.Body[i-1]); math.Abs(d-linkDistance) > 1e-9 {
			t.Fatalf("link %d length = %v, want %v", i, d, linkDistance)
		}
	}
}

func TestBodyFollowLeavesShortLinks(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	p.Body = []geom.Vec{geom.V(0, 0), geom.V(-10, 0), geom.V(-10, 5)}
	p.Update(0)
	if p.Body[1] != geom.V(-10, 0) || p.Body[2] != geom.V(-10, 5) {
		t.Fatalf("links shorter than the link distance must not move: %v", p.Body)
	}
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	p.Alive = false
	p.SetTarget(geom.V(100, 0))
	p.Update(1)
	if p.Position != (geom.Vec{}) {
		t.Fatalf("dead player moved to %v", p.Position)
	}
}

func TestGrowScoresLengthAndSpeed(t *testing.T) {
	for _, n := range []int{0, 1, 10, 25, 40} {
		p := NewPlayer(geom.V(400, 300))
		for i := 0; i < n; i++ {
			p.Grow()
		}
		if len(p.Body) != 3+n {
			t.Fatalf("n=%d: len(Body) = %d, want %d", n, len(p.Body), 3+n)
		}
		if p.Score != 10*n {
			t.Fatalf("n=%d: score = %d, want %d", n, p.Score, 10*n)
		}
		if want := math.Min(150+2*float64(n), 200); p.Speed != want {
			t.Fatalf("n=%d: speed = %v, want %v", n, p.Speed, want)
		}
	}
}

func TestGrowExtrapolatesTail(t *testing.T) {
	p := NewPlayer(geom.V(400, 300))
	p.Grow()
	if got := p.Body[3]; math.Abs(got.X-345) > 1e-9 || got.Y != 300 {
		t.Fatalf("new tail = %v, want (345, 300)", got)
	}
}

func TestGrowSingleSegmentPointsAwayFromTarget(t *testing.T) {
	p := NewPlayer(geom.V(400, 300))
	p.Body = p.Body[:1]
	p.SetTarget(geom.V(410, 300))
	p.Grow()
	if got := p.Body[1]; math.Abs(got.X-385) > 1e-9 || got.Y != 300 {
		t.Fatalf("new tail = %v, want (385, 300)", got)
	}
}

func TestSelfCollisionNeedsFourSegments(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	for n := 0; n < 4; n++ {
		p.Body = make([]geom.Vec, n)
		if p.CheckSelfCollision() {
			t.Fatalf("body of %d stacked segments reported a self collision", n)
		}
	}
}

func TestSelfCollisionDetectsOverlap(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	p.Body = []geom.Vec{
		geom.V(0, 0), geom.V(15, 0), geom.V(15, 15), geom.V(0, 15), geom.V(1, 1), geom.V(-14, 1),
	}
	if !p.CheckSelfCollision() {
		t.Fatal("segment 4 sits on the head and must collide")
	}

	p.Body = []geom.Vec{geom.V(0, 0), geom.V(-15, 0), geom.V(-30, 0), geom.V(-45, 0), geom.V(-60, 0), geom.V(-75, 0)}
	if p.CheckSelfCollision() {
		t.Fatal("a straight body must not collide with itself")
	}
}

func TestSegmentRadiusTapersToFloor(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	if r := p.SegmentRadius(0); r != 8 {
		t.Fatalf("head radius = %v, want 8", r)
	}
	p.Body = make([]geom.Vec, 10)
	if r := p.SegmentRadius(9); math.Abs(r-4.4) > 1e-9 {
		t.Fatalf("tail radius = %v, want 4.4", r)
	}
	p.Radius = 5
	if r := p.SegmentRadius(9); r != minSegmentRadius {
		t.Fatalf("tail radius = %v, want floor %v", r, minSegmentRadius)
	}
	if radii := p.SegmentRadii(); len(radii) != 10 || radii[0] != 5 {
		t.Fatalf("SegmentRadii() = %v", radii)
	}
}

func TestSegmentColorsFade(t *testing.T) {
	p := NewPlayer(geom.V(0, 0))
	p.Body = make([]geom.Vec, 6)
	want := []uint8{255, 205, 155, 105, 100, 100}
	for i, c := range p.SegmentColors() {
		if c.A != want[i] {
			t.Fatalf("segment %d alpha = %d, want %d", i, c.A, want[i])
		}
	}
}

func TestWallCollision(t *testing.T) {
	p := NewPlayer(geom.V(92, 0))
	if p.CheckWallCollision(geom.Vec{}, 100) {
		t.Fatal("head touching the wall from inside is not a collision")
	}
	p.Position = geom.V(92.5, 0)
	if !p.CheckWallCollision(geom.Vec{}, 100) {
		t.Fatal("head crossing the wall must collide")
	}
}

func TestLimitToMapKeepsHeadInside(t *testing.T) {
	center := geom.V(600, 400)
	const arena = 320.0
	rng := core.NewRNG(5)
	p := NewPlayer(center)
	for i := 0; i < 500; i++ {
		p.Position = center.Add(geom.FromAngle(rng.Angle(), rng.Range(0, 1000)))
		before := p.Position
		p.LimitToMap(center, arena)
		d := p.Position.Distance(center)
		if d+p.Radius > arena+1e-9 {
			t.Fatalf("after LimitToMap head at distance %v (+radius %v) exceeds %v", d, p.Radius, arena)
		}
		if before.Distance(center)+p.Radius <= arena && p.Position != before {
			t.Fatalf("legal position %v was moved to %v", before, p.Position)
		}
		if before.Distance(center)+p.Radius > arena && p.Body[0] != p.Position {
			t.Fatalf("Body[0] = %v, want clamped head %v", p.Body[0], p.Position)
		}
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(geom.V(400, 300))
	p.SetTarget(geom.V(0, 0))
	p.Update(0.5)
	p.Grow()
	p.Alive = false
	p.Reset()
	if p.Position != geom.V(400, 300) || p.Target != p.Position || !p.Velocity.IsZero() {
		t.Fatalf("reset kinematics: pos=%v target=%v vel=%v", p.Position, p.Target, p.Velocity)
	}
	if len(p.Body) != 3 || p.Score != 0 || p.Speed != 150 || !p.Alive {
		t.Fatalf("reset state: len=%d score=%d speed=%v alive=%v", len(p.Body), p.Score, p.Speed, p.Alive)
	}
}
