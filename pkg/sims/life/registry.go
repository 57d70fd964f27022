package life

import (
	"fmt"
	"slices"
	"strings"
)

// GeneratorConfig carries the parameters every registered generator may draw on.
type GeneratorConfig struct {
	HalfExtent int
	Layers     []NoiseLayer
	Pattern    []string
	Density    float64
}

// Factory constructs a Generator from its configuration.
type Factory func(cfg GeneratorConfig) Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}

// GeneratorNames returns the registered names in sorted order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewGenerator builds the named generator.
func NewGenerator(name string, cfg GeneratorConfig) (Generator, error) {
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (have %s)", name, strings.Join(GeneratorNames(), ", "))
	}
	return f(cfg), nil
}

func init() {
	Register("noise", func(cfg GeneratorConfig) Generator {
		return NoiseGenerator{HalfExtent: cfg.HalfExtent, Layers: cfg.Layers}
	})
	Register("pattern", func(cfg GeneratorConfig) Generator {
		rows := cfg.Pattern
		if len(rows) == 0 {
			rows = DefaultPattern
		}
		return PatternGenerator{Rows: rows}
	})
	Register("random", func(cfg GeneratorConfig) Generator {
		return RandomGenerator{HalfExtent: cfg.HalfExtent, Density: cfg.Density}
	})
}
