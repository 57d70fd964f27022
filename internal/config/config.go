// Package config provides configuration loading for the life front-ends.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of a run.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Timing    TimingConfig    `yaml:"timing"`
	Engine    EngineConfig    `yaml:"engine"`
	Generator GeneratorConfig `yaml:"generator"`
	View      ViewConfig      `yaml:"view"`
	Output    OutputConfig    `yaml:"output"`
}

// WorldConfig holds lattice-wide settings.
type WorldConfig struct {
	Edge      int    `yaml:"edge"`
	Seed      int64  `yaml:"seed"`
	Generator string `yaml:"generator"`
}

// TimingConfig holds the stepping rate.
type TimingConfig struct {
	StepDuration time.Duration `yaml:"step_duration"`
	Paused       bool          `yaml:"paused"`
}

// EngineConfig holds evaluation settings.
type EngineConfig struct {
	Workers int `yaml:"workers"`
}

// GeneratorConfig holds the parameters of the registered generators.
type GeneratorConfig struct {
	HalfExtent int           `yaml:"half_extent"`
	Density    float64       `yaml:"density"`
	Layers     []LayerConfig `yaml:"layers"`
	Pattern    []string      `yaml:"pattern"`
}

// LayerConfig is one noise layer.
type LayerConfig struct {
	Frequency float64 `yaml:"frequency"`
	Lo        float64 `yaml:"lo"`
	Hi        float64 `yaml:"hi"`
	Falloff   float64 `yaml:"falloff"`
	Radius    float64 `yaml:"radius"`
}

// ViewConfig holds window settings for the graphical front-end.
type ViewConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
	TPS    int     `yaml:"tps"`
}

// OutputConfig controls headless output.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	LogEvery int    `yaml:"log_every"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps out-of-range values instead of rejecting them.
func (c *Config) Normalize() {
	if c.World.Edge <= 0 {
		c.World.Edge = life.DefaultEdge
	}
	if c.World.Generator == "" {
		c.World.Generator = "noise"
	}
	c.Timing.StepDuration = core.ClampDuration(c.Timing.StepDuration)
	if c.Engine.Workers < 0 {
		c.Engine.Workers = 0
	}
	if c.Generator.HalfExtent <= 0 {
		c.Generator.HalfExtent = 64
	}
	if c.Generator.HalfExtent > c.World.Edge {
		c.Generator.HalfExtent = c.World.Edge
	}
	c.Generator.Density = clamp(c.Generator.Density, 0, 1)
	for i := range c.Generator.Layers {
		l := &c.Generator.Layers[i]
		if l.Frequency < 0 {
			l.Frequency = -l.Frequency
		}
		if l.Lo > l.Hi {
			l.Lo, l.Hi = l.Hi, l.Lo
		}
		if l.Radius < 0 {
			l.Radius = 0
		}
	}
	if c.View.Width <= 0 {
		c.View.Width = 1280
	}
	if c.View.Height <= 0 {
		c.View.Height = 800
	}
	if c.View.Zoom <= 0 {
		c.View.Zoom = 6
	}
	if c.View.TPS <= 0 {
		c.View.TPS = 60
	}
	if c.Output.LogEvery < 0 {
		c.Output.LogEvery = 0
	}
}

// GeneratorParams converts the generator section for the life registry.
func (c *Config) GeneratorParams() life.GeneratorConfig {
	layers := make([]life.NoiseLayer, len(c.Generator.Layers))
	for i, l := range c.Generator.Layers {
		layers[i] = life.NoiseLayer{
			Frequency: l.Frequency,
			Lo:        l.Lo,
			Hi:        l.Hi,
			Falloff:   l.Falloff,
			Radius:    l.Radius,
		}
	}
	return life.GeneratorConfig{
		HalfExtent: c.Generator.HalfExtent,
		Layers:     layers,
		Pattern:    c.Generator.Pattern,
		Density:    c.Generator.Density,
	}
}

// WorldOptions builds the options for life.New.
func (c *Config) WorldOptions() (life.Options, error) {
	gen, err := life.NewGenerator(c.World.Generator, c.GeneratorParams())
	if err != nil {
		return life.Options{}, fmt.Errorf("building generator: %w", err)
	}
	return life.Options{
		Edge:      c.World.Edge,
		Duration:  c.Timing.StepDuration,
		Workers:   c.Engine.Workers,
		Seed:      c.World.Seed,
		Paused:    c.Timing.Paused,
		Generator: gen,
	}, nil
}

// ResolveSeed replaces a zero seed with a time-based one and returns the
// seed in effect.
func (c *Config) ResolveSeed() int64 {
	if c.World.Seed == 0 {
		c.World.Seed = time.Now().UnixNano()
	}
	return c.World.Seed
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
