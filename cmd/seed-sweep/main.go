package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/integrii/flaggy"

	"sparse-life/internal/config"
	"sparse-life/internal/sweep"
	"sparse-life/pkg/core"
)

func main() {
	var flags config.Flags
	generations := 240
	workers := runtime.NumCPU()
	seeds := 4
	coarse := []float64{0.35, 0.42, 0.5}
	fine := []float64{0.45, 0.52, 0.6}
	var overrides []string

	p := flaggy.NewParser("seed-sweep")
	p.Description = "Sweep noise-layer acceptance floors and seeds, reporting the surviving population."
	flags.Bind(p)
	p.Int(&generations, "n", "generations", "generations to simulate per scenario")
	p.Int(&workers, "j", "jobs", "number of worker goroutines")
	p.Int(&seeds, "", "seeds", "seeds per parameter pair, derived from the configured seed")
	p.Float64Slice(&coarse, "", "coarse", "acceptance floors for layer 0")
	p.Float64Slice(&fine, "", "fine", "acceptance floors for layer 1")
	p.StringSlice(&overrides, "", "set", "config override in key=value form (repeatable)")
	if err := p.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, kv := range overrides {
		if err := sweep.ApplyOverride(cfg, kv); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	cfg.Normalize()

	sets := sweep.Grid(coarse, fine, core.NewRNG(cfg.ResolveSeed()).Seeds(seeds))

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d generations)\n", len(sets), workers, generations)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	all, err := sweep.Run(ctx, *cfg, sets, generations, workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sweep:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) final=%d peak=%d initial=%d settled=%d params=%s\n",
			i+1, res.Final, res.Peak, res.Initial, res.SettledAt, res.Params)
	}

	extinct := 0
	for _, res := range all {
		if res.Extinct {
			extinct++
		}
	}
	fmt.Printf("\n%d of %d scenarios went extinct\n", extinct, len(all))

	if cfg.Output.Dir != "" {
		if err := writeResults(cfg.Output.Dir, all); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeResults(dir string, all []sweep.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "sweep.csv"))
	if err != nil {
		return fmt.Errorf("creating sweep.csv: %w", err)
	}
	defer f.Close()
	if err := gocsv.Marshal(all, f); err != nil {
		return fmt.Errorf("writing sweep.csv: %w", err)
	}
	return nil
}
