//go:build ebiten

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/integrii/flaggy"

	"sparse-life/internal/app"
	"sparse-life/internal/config"
	"sparse-life/pkg/sims/life"
)

func main() {
	var flags config.Flags
	var logJSON, verbose bool

	p := flaggy.NewParser("ca")
	p.Description = "Sparse Game of Life in a window."
	flags.Bind(p)
	p.Bool(&logJSON, "", "log-json", "log as JSON")
	p.Bool(&verbose, "v", "verbose", "enable debug logging")
	if err := p.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var logger *slog.Logger
	if logJSON {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	slog.SetDefault(logger)

	cfg, err := flags.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	seed := cfg.ResolveSeed()
	worldOpts, err := cfg.WorldOptions()
	if err != nil {
		slog.Error("invalid world options", "error", err)
		os.Exit(1)
	}
	world := life.New(worldOpts)

	slog.Info("starting",
		"generator", cfg.World.Generator,
		"seed", seed,
		"alive", world.Status().Alive,
		"step", cfg.Timing.StepDuration,
	)

	game := app.New(world, cfg.View, logger)
	if err := app.Run(game, "sparse-life", cfg.View); err != nil {
		slog.Error("window closed with error", "error", err)
		os.Exit(1)
	}
}
