package slither

import "math"

// MaxFood is the capacity of the food pool.
const MaxFood = 50

// Config controls the screen dimensions and arena of a game session.
type Config struct {
	Width  int
	Height int

	// ArenaRadius overrides the arena size. Zero derives it from the screen.
	ArenaRadius float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1200,
		Height: 800,
		Seed:   1337,
	}
}

// normalized fills in missing dimensions.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ArenaRadius <= 0 {
		c.ArenaRadius = math.Min(float64(c.Width), float64(c.Height)) * 0.4
	}
	return c
}
