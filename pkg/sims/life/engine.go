package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"sparse-life/pkg/core"
)

// minParallelCells is the population below which fan-out costs more than it saves.
const minParallelCells = 4096

// Evaluate computes the next generation of old under B3/S23. Neighbour counts
// are read from old only, so the result does not depend on iteration order.
// Evaluate does not modify old.
func Evaluate(old core.Set) (births, deaths core.Set) {
	births, deaths = core.NewSet(), core.NewSet()
	checked := make(map[core.Coord]struct{})
	for c := range old {
		evaluateCell(old, c, births, deaths, checked)
	}
	return births, deaths
}

// evaluateCell decides the fate of the live cell c and of its dead
// neighbours. Dead cells already recorded in checked are skipped.
func evaluateCell(old core.Set, c core.Coord, births, deaths core.Set, checked map[core.Coord]struct{}) {
	live := 0
	for _, n := range c.Neighbors() {
		if old.Has(n) {
			live++
			continue
		}
		if _, seen := checked[n]; seen {
			continue
		}
		checked[n] = struct{}{}
		if countNeighbors(old, n) == 3 {
			births.Add(n)
		}
	}
	if live < 2 || live > 3 {
		deaths.Add(c)
	}
}

func countNeighbors(s core.Set, c core.Coord) int {
	n := 0
	for _, d := range core.Moore {
		if s.Has(c.Add(d)) {
			n++
		}
	}
	return n
}

// Engine evaluates generations, optionally fanning the live cells out over
// several goroutines.
type Engine struct {
	// Workers is the number of goroutines used for large populations.
	// Zero selects GOMAXPROCS; one evaluates sequentially.
	Workers int
}

// Evaluate returns the same births and deaths as the package-level Evaluate.
func (e Engine) Evaluate(old core.Set) (births, deaths core.Set) {
	workers := e.workers()
	if workers <= 1 || len(old) < minParallelCells {
		return Evaluate(old)
	}

	cells := make([]core.Coord, 0, len(old))
	for c := range old {
		cells = append(cells, c)
	}
	chunk := (len(cells) + workers - 1) / workers

	type partial struct {
		births, deaths core.Set
	}
	parts := make([]partial, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(cells) {
			break
		}
		hi := min(lo+chunk, len(cells))
		g.Go(func() error {
			b, d := core.NewSet(), core.NewSet()
			checked := make(map[core.Coord]struct{})
			for _, c := range cells[lo:hi] {
				evaluateCell(old, c, b, d, checked)
			}
			parts[w] = partial{births: b, deaths: d}
			return nil
		})
	}
	_ = g.Wait()

	births, deaths = core.NewSet(), core.NewSet()
	for _, p := range parts {
		for c := range p.births {
			births.Add(c)
		}
		for c := range p.deaths {
			deaths.Add(c)
		}
	}
	return births, deaths
}

func (e Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.GOMAXPROCS(0)
}
