package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"aqualife/internal/app"
	"aqualife/internal/core"
	"aqualife/internal/render"
	"aqualife/internal/sims/life"
	"aqualife/internal/term"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "life: ", log.LstdFlags)

	seed := cfg.RNGSeed()
	logger.Printf("starting with seed %d at %d generations per second", seed, cfg.TPS)

	screen, err := term.Open()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var keys core.KeyQueue
	loop := app.NewLoop(life.New(life.Rows, life.Cols), render.NewRenderer(screen), &keys, core.NewRNG(seed), logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return screen.PumpKeys(ctx, &keys, stop) })
	g.Go(func() error { return loop.Run(ctx, cfg.TPS) })
	err = g.Wait()
	screen.Close()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	logger.Printf("stopped after %d runs", loop.Runs())
}
