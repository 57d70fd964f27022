// Package scene mirrors the committed generation into an ECS world so
// renderers can attach per-cell state such as age.
package scene

import (
	"iter"

	"github.com/mlange-42/ark/ecs"

	"sparse-life/pkg/core"
)

// Cell is the lattice coordinate of a live cell entity.
type Cell struct {
	X, Y int
}

// Age counts the consecutive syncs a cell has been alive for. A freshly
// born cell has age 0.
type Age struct {
	Generations int
}

// Diff reports what a Sync changed.
type Diff struct {
	Created int
	Removed int
}

// Scene holds one entity per live cell.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map2[Cell, Age]
	filter *ecs.Filter2[Cell, Age]
	index  map[core.Coord]ecs.Entity
	seen   core.Set
}

// New returns an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		mapper: ecs.NewMap2[Cell, Age](world),
		filter: ecs.NewFilter2[Cell, Age](world),
		index:  make(map[core.Coord]ecs.Entity),
		seen:   core.NewSet(),
	}
}

// Sync makes the scene match alive. Surviving cells age by one, new cells
// get fresh entities and vanished cells are removed.
func (s *Scene) Sync(alive iter.Seq[core.Coord]) Diff {
	var d Diff
	clear(s.seen)
	for c := range alive {
		s.seen.Add(c)
		if e, ok := s.index[c]; ok {
			_, age := s.mapper.Get(e)
			age.Generations++
			continue
		}
		s.index[c] = s.mapper.NewEntity(&Cell{X: c.X, Y: c.Y}, &Age{})
		d.Created++
	}

	for c, e := range s.index {
		if s.seen.Has(c) {
			continue
		}
		s.world.RemoveEntity(e)
		delete(s.index, c)
		d.Removed++
	}
	return d
}

// Len returns the number of cell entities.
func (s *Scene) Len() int { return len(s.index) }

// AgeAt returns the age of the cell at c.
func (s *Scene) AgeAt(c core.Coord) (int, bool) {
	e, ok := s.index[c]
	if !ok {
		return 0, false
	}
	_, age := s.mapper.Get(e)
	return age.Generations, true
}

// Each calls fn for every cell entity. fn must not modify the scene.
func (s *Scene) Each(fn func(c core.Coord, age int)) {
	query := s.filter.Query()
	for query.Next() {
		cell, age := query.Get()
		fn(core.C(cell.X, cell.Y), age.Generations)
	}
}

// Reset removes every entity.
func (s *Scene) Reset() {
	for c, e := range s.index {
		s.world.RemoveEntity(e)
		delete(s.index, c)
	}
}
