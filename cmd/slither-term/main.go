package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"

	"slither/internal/app"
	"slither/internal/core"
	"slither/internal/sims/slither"
	"slither/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(fmt.Errorf("create screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		log.Fatal(fmt.Errorf("init screen: %w", err))
	}
	defer screen.Fini()

	game := slither.NewWithConfig(cfg.Game())
	// The screen owns the tty.
	game.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	input := term.NewInput(screen)
	renderer := term.NewRenderer(screen, game.Size())
	game.Run(input, renderer, core.NewFrameClock(cfg.TPS))
}
