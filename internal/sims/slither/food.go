package slither

import (
	"image/color"

	"slither/internal/core"
	"slither/internal/geom"
)

// FoodType selects the size, value and color of a pellet.
type FoodType uint8

const (
	FoodNormal FoodType = iota
	FoodBig
	FoodGolden
)

func (t FoodType) String() string {
	switch t {
	case FoodNormal:
		return "normal"
	case FoodBig:
		return "big"
	case FoodGolden:
		return "golden"
	default:
		return "unknown"
	}
}

// foodSpawnMargin keeps SetRandomPosition away from the arena edge.
const foodSpawnMargin = 50.0

var (
	normalFoodColors = [...]color.RGBA{
		{R: 255, G: 100, B: 100, A: 255},
		{R: 100, G: 255, B: 100, A: 255},
		{R: 100, G: 100, B: 255, A: 255},
		{R: 255, G: 255, B: 100, A: 255},
		{R: 255, G: 100, B: 255, A: 255},
		{R: 100, G: 255, B: 255, A: 255},
	}
	bigFoodColor    = color.RGBA{R: 255, G: 150, B: 50, A: 255}
	goldenFoodColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}

	// GoldenHighlight is drawn inside golden pellets at half their radius.
	GoldenHighlight = color.RGBA{R: 255, G: 255, B: 200, A: 150}
)

// Food is one slot of the food pool. The zero value is an inactive pellet.
type Food struct {
	Position geom.Vec
	Radius   float64
	Type     FoodType
	Value    int
	Active   bool
	Color    color.RGBA
}

// Spawn activates the pellet at pos with the attributes of t. Normal pellets
// draw their color from rng; a nil rng picks the first palette entry.
func (f *Food) Spawn(pos geom.Vec, t FoodType, rng *core.RNG) {
	f.Position = pos
	f.Type = t
	f.Active = true
	f.Radius = FoodRadius(t)
	switch t {
	case FoodBig:
		f.Value = 25
		f.Color = bigFoodColor
	case FoodGolden:
		f.Value = 50
		f.Color = goldenFoodColor
	default:
		f.Type = FoodNormal
		f.Value = 10
		idx := 0
		if rng != nil {
			idx = rng.IntN(len(normalFoodColors))
		}
		f.Color = normalFoodColors[idx]
	}
}

// Reset deactivates the pellet so its slot can be reused.
func (f *Food) Reset() {
	f.Active = false
	f.Position = geom.Vec{}
}

// IsColliding reports whether an active pellet overlaps the circle at pos.
// Touching edges do not count.
func (f *Food) IsColliding(pos geom.Vec, radius float64) bool {
	if !f.Active {
		return false
	}
	return f.Position.Distance(pos) < f.Radius+radius
}

// Highlight reports whether renderers should draw the inner glint.
func (f *Food) Highlight() bool { return f.Active && f.Type == FoodGolden }

// SetRandomPosition moves the pellet to a polar sample around center. The
// distance is drawn uniformly, so placements cluster toward the middle.
func (f *Food) SetRandomPosition(center geom.Vec, arenaRadius float64, rng *core.RNG) {
	angle := rng.Angle()
	dist := rng.Float64() * (arenaRadius - f.Radius - foodSpawnMargin)
	if dist < 0 {
		dist = 0
	}
	f.Position = center.Add(geom.FromAngle(angle, dist))
}

// FoodRadius returns the radius a pellet of type t spawns with.
func FoodRadius(t FoodType) float64 {
	switch t {
	case FoodBig:
		return 8
	case FoodGolden:
		return 6
	default:
		return 5
	}
}
