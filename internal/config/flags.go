package config

import (
	"time"

	"github.com/integrii/flaggy"
)

// Flags holds command-line overrides. Zero values leave the loaded
// configuration untouched.
type Flags struct {
	Path      string
	Generator string
	Seed      int64
	Edge      int
	Step      time.Duration
	Workers   int
	Paused    bool
	Zoom      float64
	TPS       int
	OutDir    string
}

// Bind attaches the overrides to the provided parser.
func (f *Flags) Bind(p *flaggy.Parser) {
	p.String(&f.Path, "c", "config", "YAML config file merged over the built-in defaults")
	p.String(&f.Generator, "g", "generator", "initial pattern generator (noise|pattern|random)")
	p.Int64(&f.Seed, "s", "seed", "seed for reset (0 keeps the configured seed)")
	p.Int(&f.Edge, "e", "edge", "boundary edge in cells")
	p.Duration(&f.Step, "i", "interval", "time between generations, e.g. 150ms")
	p.Int(&f.Workers, "w", "workers", "evaluation workers (1 = sequential)")
	p.Bool(&f.Paused, "p", "paused", "start paused")
	p.Float64(&f.Zoom, "z", "zoom", "pixels per cell")
	p.Int(&f.TPS, "t", "tps", "ticks per second")
	p.String(&f.OutDir, "o", "out", "directory for CSV output")
}

// Load reads the file named by -config and applies the overrides.
func (f *Flags) Load() (*Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	return cfg, nil
}

// Apply copies every non-zero override into cfg and normalizes it again.
func (f *Flags) Apply(cfg *Config) {
	if f.Generator != "" {
		cfg.World.Generator = f.Generator
	}
	if f.Seed != 0 {
		cfg.World.Seed = f.Seed
	}
	if f.Edge != 0 {
		cfg.World.Edge = f.Edge
	}
	if f.Step != 0 {
		cfg.Timing.StepDuration = f.Step
	}
	if f.Workers != 0 {
		cfg.Engine.Workers = f.Workers
	}
	if f.Paused {
		cfg.Timing.Paused = true
	}
	if f.Zoom != 0 {
		cfg.View.Zoom = f.Zoom
	}
	if f.TPS != 0 {
		cfg.View.TPS = f.TPS
	}
	if f.OutDir != "" {
		cfg.Output.Dir = f.OutDir
	}
	cfg.Normalize()
}
