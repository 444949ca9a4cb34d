package slither

import (
	"math"

	"slither/internal/geom"
)

const (
	placementAttempts = 50
	// placementMinDist and placementEdgeGap bound the sampled distance from
	// the arena center to [placementMinDist, radius-placementEdgeGap].
	placementMinDist = 50.0
	placementEdgeGap = 100.0
	// HeadClearance keeps new pellets from appearing under the player.
	HeadClearance = 50.0
	// FoodClearance is the gap left between two pellets' edges.
	FoodClearance = 20.0
)

// SpawnFood activates the first free pool slot with a random type at a
// random position. It reports false when the pool is full.
func (g *Game) SpawnFood() bool {
	for i := range g.foods {
		f := &g.foods[i]
		if f.Active {
			continue
		}
		t := g.randomFoodType()
		f.Spawn(g.RandomMapPosition(FoodRadius(t)), t, g.rng)
		return true
	}
	return false
}

// randomFoodType draws normal, big and golden with 80/15/5 odds.
func (g *Game) randomFoodType() FoodType {
	switch roll := g.rng.IntN(100); {
	case roll < 80:
		return FoodNormal
	case roll < 95:
		return FoodBig
	default:
		return FoodGolden
	}
}

// RandomMapPosition samples candidate spots for a pellet of the given radius
// and returns the first that fits inside the arena, clears the head and
// clears every active pellet. After placementAttempts misses it returns the
// last candidate unchecked so spawning always makes progress.
func (g *Game) RandomMapPosition(radius float64) geom.Vec {
	var pos geom.Vec
	for i := 0; i < placementAttempts; i++ {
		pos = g.samplePosition()
		if g.positionValid(pos, radius) {
			return pos
		}
	}
	return pos
}

// PlacementRing returns the inner and outer distance from the arena center
// that spawn candidates are drawn from.
func (g *Game) PlacementRing() (inner, outer float64) {
	return placementMinDist, math.Max(g.radius-placementEdgeGap, placementMinDist)
}

func (g *Game) samplePosition() geom.Vec {
	angle := g.rng.Angle()
	dist := g.rng.Range(placementMinDist, g.radius-placementEdgeGap)
	return g.center.Add(geom.FromAngle(angle, dist))
}

func (g *Game) positionValid(pos geom.Vec, radius float64) bool {
	if pos.Distance(g.center)+radius > g.radius {
		return false
	}
	if pos.Distance(g.player.Head()) < HeadClearance {
		return false
	}
	for i := range g.foods {
		f := &g.foods[i]
		if f.Active && pos.Distance(f.Position) < radius+f.Radius+FoodClearance {
			return false
		}
	}
	return true
}
