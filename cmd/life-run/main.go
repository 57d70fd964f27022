package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"sparse-life/internal/config"
	"sparse-life/internal/telemetry"
	"sparse-life/pkg/sims/life"
)

func main() {
	var flags config.Flags
	generations := 1000
	realtime := false

	p := flaggy.NewParser("life-run")
	p.Description = "Run the sparse Game of Life without a display and record every generation."
	flags.Bind(p)
	p.Int(&generations, "n", "generations", "generations to run")
	p.Bool(&realtime, "r", "realtime", "honour the configured step duration instead of running flat out")
	if err := p.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(flags, generations, realtime); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(flags config.Flags, generations int, realtime bool) error {
	cfg, err := flags.Load()
	if err != nil {
		return err
	}
	seed := cfg.ResolveSeed()
	opts, err := cfg.WorldOptions()
	if err != nil {
		return err
	}
	opts.Paused = false

	out, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}

	world := life.New(opts)
	rec := telemetry.NewRecorder(out, slog.Default(), cfg.Output.LogEvery)
	world.SetObserver(rec.Observe)

	slog.Info("starting headless run",
		"generator", cfg.World.Generator,
		"seed", seed,
		"generations", generations,
		"alive", world.Status().Alive,
		"output_dir", out.Dir(),
	)

	start := time.Now()
	if realtime {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.View.TPS))
		defer ticker.Stop()
		last := time.Now()
		for world.Status().Generation < uint64(generations) {
			now := <-ticker.C
			world.Tick(now.Sub(last))
			last = now
		}
	} else {
		for i := 0; i < generations; i++ {
			world.Step()
		}
	}
	if err := rec.Err(); err != nil {
		return fmt.Errorf("recording generations: %w", err)
	}

	summary := rec.Summary()
	if err := out.WriteSummary(summary); err != nil {
		return err
	}
	slog.Info("run complete", "elapsed", time.Since(start).Round(time.Millisecond), "summary", summary)
	return nil
}
