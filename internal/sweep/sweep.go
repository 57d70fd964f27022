// Package sweep runs batches of headless worlds over a grid of generator
// parameters and seeds.
package sweep

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"sparse-life/internal/config"
	"sparse-life/pkg/sims/life"
)

// Params selects one scenario: the acceptance floor of the first two noise
// layers and the reset seed.
type Params struct {
	CoarseLo float64 `csv:"coarse_lo"`
	FineLo   float64 `csv:"fine_lo"`
	Seed     int64   `csv:"seed"`
}

func (p Params) String() string {
	return fmt.Sprintf("coarse_lo=%.3f fine_lo=%.3f seed=%d", p.CoarseLo, p.FineLo, p.Seed)
}

// Result summarises one scenario.
type Result struct {
	Params
	Initial int `csv:"initial"`
	Final   int `csv:"final"`
	Peak    int `csv:"peak"`
	// SettledAt is the first generation with no births and no deaths, or 0
	// when the run never settled.
	SettledAt uint64 `csv:"settled_at"`
	Extinct   bool   `csv:"extinct"`
}

// Grid expands the option lists into every combination, seeds innermost.
func Grid(coarse, fine []float64, seeds []int64) []Params {
	out := make([]Params, 0, len(coarse)*len(fine)*len(seeds))
	for _, c := range coarse {
		for _, f := range fine {
			for _, s := range seeds {
				out = append(out, Params{CoarseLo: c, FineLo: f, Seed: s})
			}
		}
	}
	return out
}

// Run evaluates every parameter set for the given number of generations on
// a pool of workers. Results are sorted by final population, largest first.
func Run(ctx context.Context, base config.Config, sets []Params, generations, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan Params)
	results := make(chan Result)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(base, params, generations)
				if err != nil {
					errs <- err
					cancel()
					return
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, params := range sets {
			select {
			case jobs <- params:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(all, func(a, b Result) int {
		if a.Final != b.Final {
			return b.Final - a.Final
		}
		return compareParams(a.Params, b.Params)
	})
	return all, nil
}

func compareParams(a, b Params) int {
	switch {
	case a.CoarseLo != b.CoarseLo:
		return cmpFloat(a.CoarseLo, b.CoarseLo)
	case a.FineLo != b.FineLo:
		return cmpFloat(a.FineLo, b.FineLo)
	case a.Seed < b.Seed:
		return -1
	case a.Seed > b.Seed:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	if a < b {
		return -1
	}
	return 1
}

func runScenario(base config.Config, params Params, generations int) (Result, error) {
	cfg := base
	cfg.Generator.Layers = slices.Clone(base.Generator.Layers)
	if len(cfg.Generator.Layers) > 0 {
		cfg.Generator.Layers[0].Lo = params.CoarseLo
	}
	if len(cfg.Generator.Layers) > 1 {
		cfg.Generator.Layers[1].Lo = params.FineLo
	}
	cfg.World.Seed = params.Seed
	cfg.Engine.Workers = 1
	cfg.Normalize()

	opts, err := cfg.WorldOptions()
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", params, err)
	}
	world := life.New(opts)

	res := Result{Params: params, Initial: world.Status().Alive}
	res.Peak = res.Initial
	world.SetObserver(func(r life.StepReport) {
		if r.Alive > res.Peak {
			res.Peak = r.Alive
		}
		if res.SettledAt == 0 && r.Born == 0 && r.Died == 0 {
			res.SettledAt = r.Generation
		}
	})
	for i := 0; i < generations && res.SettledAt == 0; i++ {
		world.Step()
	}
	res.Final = world.Status().Alive
	res.Extinct = res.Final == 0
	return res, nil
}

// ApplyOverride sets one configuration value from a key=value pair. Layer
// keys take the form layerN.field.
func ApplyOverride(cfg *config.Config, kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("override %q: want key=value", kv)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "world.edge":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
		cfg.World.Edge = v
		return nil
	case "generator.half_extent":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
		cfg.Generator.HalfExtent = v
		return nil
	case "generator.density":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
		cfg.Generator.Density = v
		return nil
	}

	layer, field, ok := strings.Cut(key, ".")
	if !ok || !strings.HasPrefix(layer, "layer") {
		return fmt.Errorf("override %q: unknown key", key)
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(layer, "layer"))
	if err != nil || idx < 0 || idx >= len(cfg.Generator.Layers) {
		return fmt.Errorf("override %q: no such layer", key)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("override %s: %w", key, err)
	}
	l := &cfg.Generator.Layers[idx]
	switch field {
	case "frequency":
		l.Frequency = v
	case "lo":
		l.Lo = v
	case "hi":
		l.Hi = v
	case "falloff":
		l.Falloff = v
	case "radius":
		l.Radius = v
	default:
		return fmt.Errorf("override %q: unknown layer field", key)
	}
	return nil
}
