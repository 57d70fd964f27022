package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"sparse-life/internal/config"
	"sparse-life/internal/termview"
	"sparse-life/pkg/sims/life"
)

func main() {
	var flags config.Flags
	frame := 50 * time.Millisecond
	logPath := ""

	p := flaggy.NewParser("life-term")
	p.Description = "Sparse Game of Life in the terminal."
	flags.Bind(p)
	p.Duration(&frame, "f", "frame", "redraw interval")
	p.String(&logPath, "l", "log", "write logs to this file (the terminal is taken by the UI)")
	if err := p.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "opening log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(logger)

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}
	seed := cfg.ResolveSeed()
	opts, err := cfg.WorldOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, "world options:", err)
		os.Exit(1)
	}
	world := life.New(opts)
	logger.Info("starting", "generator", cfg.World.Generator, "seed", seed, "alive", world.Status().Alive)

	t, err := termview.New(world, frame, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := t.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("stopped", "generation", world.Status().Generation)
}
