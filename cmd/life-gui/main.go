//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"aqualife/internal/app"
	"aqualife/internal/core"
	"aqualife/internal/render"
	"aqualife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "life: ", log.LstdFlags)

	var keys core.KeyQueue
	buffer := render.NewCellBuffer(render.ScreenCols, render.ScreenRows)
	world := life.New(life.Rows, life.Cols)
	loop := app.NewLoop(world, render.NewRenderer(buffer), &keys, core.NewRNG(cfg.RNGSeed()), logger)
	game := app.NewGame(loop, buffer, &keys, cfg.Scale)

	ebiten.SetWindowTitle("aqualife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.WindowSize(world.Size(), cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
