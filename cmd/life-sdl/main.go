//go:build sdl

package main

import (
	"flag"
	"log"
	"runtime"

	"game-of-life/internal/app"
	"game-of-life/internal/render"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL must be driven from the main OS thread.
func init() { runtime.LockOSThread() }

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

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("initialise SDL video subsystem: %v", err)
	}
	defer sdl.Quit()

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow("Game of Life", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.WindowWidth), int32(cfg.WindowHeight), flags)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatalf("create canvas from window: %v", err)
	}
	defer renderer.Destroy()

	ctrl := app.NewController(grid, cfg.Tick, cfg.Frame, nil)
	canvas := render.NewSDLCanvas(renderer)
	ctrl.Run(app.SDLEvents{}, canvas, func() { sdl.Delay(1) })
}
