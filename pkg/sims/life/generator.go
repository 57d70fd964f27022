package life

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"sparse-life/pkg/core"
)

// Generator produces the initial live cells for a reset.
type Generator interface {
	Generate(seed int64) []core.Coord
}

// NoiseLayer accepts a coordinate when its noise value lies in [Lo, Hi).
type NoiseLayer struct {
	// Frequency scales lattice coordinates before sampling the field.
	Frequency float64
	Lo, Hi    float64
	// Falloff, when non-zero, multiplies the value by
	// 1 - (distance/maxDistance)*Falloff.
	Falloff float64
	// Radius, when positive, rejects every coordinate farther than Radius
	// from the origin.
	Radius float64
}

// NoiseGenerator samples the square [-HalfExtent, HalfExtent]² and keeps the
// coordinates accepted by every layer. A coarse layer shapes the silhouette
// while finer layers add texture.
type NoiseGenerator struct {
	HalfExtent int
	Layers     []NoiseLayer
}

// Generate returns the accepted coordinates in row-major order. Each layer
// samples its own field, seeded from seed.
func (g NoiseGenerator) Generate(seed int64) []core.Coord {
	if g.HalfExtent < 0 {
		return nil
	}
	rng := core.NewRNG(seed)
	fields := make([]opensimplex.Noise, len(g.Layers))
	for i := range fields {
		fields[i] = opensimplex.NewNormalized(rng.Int64())
	}

	maxDist := float64(g.HalfExtent) * math.Sqrt2
	if maxDist == 0 {
		maxDist = 1
	}

	var out []core.Coord
	h := g.HalfExtent
	for y := -h; y <= h; y++ {
		for x := -h; x <= h; x++ {
			if g.accept(fields, float64(x), float64(y), maxDist) {
				out = append(out, core.C(x, y))
			}
		}
	}
	return out
}

func (g NoiseGenerator) accept(fields []opensimplex.Noise, x, y, maxDist float64) bool {
	dist := math.Hypot(x, y)
	for i, layer := range g.Layers {
		if layer.Radius > 0 && dist > layer.Radius {
			return false
		}
		v := fields[i].Eval2(x*layer.Frequency, y*layer.Frequency)
		if layer.Falloff != 0 {
			v *= 1 - dist/maxDist*layer.Falloff
		}
		if v < layer.Lo || v >= layer.Hi {
			return false
		}
	}
	return true
}

// DefaultPattern is the literal starter set used for demos and tests: a
// glider, a blinker, a block and an R-pentomino.
var DefaultPattern = []string{
	".#..........",
	"..#.....###.",
	"###.........",
	"............",
	"##.......##.",
	"##......##..",
	".........#..",
}

// PatternGenerator stages a fixed literal pattern. Rows are read top to
// bottom; '#', 'O' and '1' mark live cells. The seed is ignored.
type PatternGenerator struct {
	Rows   []string
	Origin core.Coord
}

// Generate returns the pattern's live cells offset by Origin.
func (g PatternGenerator) Generate(int64) []core.Coord {
	var out []core.Coord
	for y, row := range g.Rows {
		for x, ch := range []byte(row) {
			switch ch {
			case '#', 'O', '1':
				out = append(out, core.C(g.Origin.X+x, g.Origin.Y+y))
			}
		}
	}
	return out
}

// RandomGenerator fills the square [-HalfExtent, HalfExtent]² with uniform
// soup of the given density.
type RandomGenerator struct {
	HalfExtent int
	Density    float64
}

// Generate returns the live cells in row-major order.
func (g RandomGenerator) Generate(seed int64) []core.Coord {
	rng := core.NewRNG(seed)
	var out []core.Coord
	h := g.HalfExtent
	for y := -h; y <= h; y++ {
		for x := -h; x <= h; x++ {
			if rng.Chance(g.Density) {
				out = append(out, core.C(x, y))
			}
		}
	}
	return out
}
