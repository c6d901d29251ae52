package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"aqualife/internal/survey"
)

func main() {
	runs := flag.Int("runs", 200, "number of seeded worlds to simulate")
	maxGens := flag.Int("max-gens", 2000, "generation cap per world")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first world; later worlds use seed+1, seed+2, ...")
	top := flag.Int("top", 5, "print the longest-lived seeds")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d worlds (%d workers, up to %d generations)\n", *runs, *workers, *maxGens)
	start := time.Now()
	sum, err := survey.Run(ctx, survey.Options{Runs: *runs, MaxGens: *maxGens, Workers: *workers, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s in %s\n", sum, time.Since(start).Round(time.Millisecond))

	results := append([]survey.Result(nil), sum.Results...)
	sort.Slice(results, func(i, j int) bool { return results[i].Lifespan > results[j].Lifespan })
	for i := 0; i < *top && i < len(results); i++ {
		r := results[i]
		status := "extinct"
		if !r.Extinct {
			status = fmt.Sprintf("alive (%d cells)", r.FinalPop)
		}
		fmt.Printf("seed %d: %d generations, seeded %d of %d draws, %s\n", r.Seed, r.Lifespan, r.Seeded, r.Draws, status)
	}
}
