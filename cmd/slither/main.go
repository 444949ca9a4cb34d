//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"slither/internal/app"
	"slither/internal/render"
	"slither/internal/sims/slither"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim := slither.NewWithConfig(cfg.Game())

	fonts, err := render.LoadFonts(render.DefaultFontPaths)
	if err != nil {
		log.Printf("warning: %v; using built-in font", err)
	}

	ebiten.SetWindowTitle("slither")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	game := app.New(sim, fonts)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(fmt.Errorf("run game: %w", err))
	}
}
