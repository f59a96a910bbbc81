//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"game-of-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	grid, err := cfg.NewGrid()
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	ctrl := app.NewController(grid, cfg.Tick, cfg.Frame, nil)
	game := app.New(ctrl, cfg.HUD)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
