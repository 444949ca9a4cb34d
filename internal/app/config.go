package app

import (
	"flag"
	"time"

	"slither/internal/sims/slither"
)

// Config represents the command-line parameters shared by both frontends.
type Config struct {
	Width  int
	Height int
	TPS    int
	// Seed of 0 picks one from the wall clock.
	Seed int64
}

// NewConfig returns a Config populated with the default window and tick rate.
func NewConfig() *Config {
	def := slither.DefaultConfig()
	return &Config{Width: def.Width, Height: def.Height, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "logical screen width")
	fs.IntVar(&c.Height, "height", c.Height, "logical screen height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = time based)")
}

// Game converts the flags into a session config. The arena radius follows
// the screen size.
func (c *Config) Game() slither.Config {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return slither.Config{Width: c.Width, Height: c.Height, Seed: seed}
}
