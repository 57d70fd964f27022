package life

import (
	"iter"

	"sparse-life/pkg/core"
)

// CommitResult counts the cells a commit actually changed.
type CommitResult struct {
	Born int
	Died int
}

// Lattice holds the committed generation and the insertions staged for the
// next commit.
type Lattice struct {
	alive   core.Set
	pending map[core.Coord]bool
	bounds  Boundary
}

// NewLattice returns an empty lattice guarded by b.
func NewLattice(b Boundary) *Lattice {
	return &Lattice{
		alive:   core.NewSet(),
		pending: make(map[core.Coord]bool),
		bounds:  b,
	}
}

// Boundary returns the insertion bounds.
func (l *Lattice) Boundary() Boundary { return l.bounds }

// SetBoundary replaces the insertion bounds. Live cells outside the new bounds
// are kept.
func (l *Lattice) SetBoundary(b Boundary) { l.bounds = b }

// StageSpawn records c for insertion at the next commit. Staging is
// idempotent and does not look at the alive set.
func (l *Lattice) StageSpawn(c core.Coord) {
	l.pending[c] = true
}

// Commit removes deaths from the alive set and inserts births together with
// every staged coordinate. Insertions outside the boundary, or of cells that
// were alive before the commit, are skipped. The staging area is always empty
// afterwards.
func (l *Lattice) Commit(births, deaths core.Set) CommitResult {
	add := make([]core.Coord, 0, len(births)+len(l.pending))
	for c := range births {
		if l.insertable(c) {
			add = append(add, c)
		}
	}
	for c, spawn := range l.pending {
		if spawn && !births.Has(c) && l.insertable(c) {
			add = append(add, c)
		}
	}

	var res CommitResult
	for c := range deaths {
		if l.alive.Has(c) {
			l.alive.Remove(c)
			res.Died++
		}
	}
	for _, c := range add {
		l.alive.Add(c)
	}
	res.Born = len(add)

	clear(l.pending)
	return res
}

func (l *Lattice) insertable(c core.Coord) bool {
	return l.bounds.InBounds(c) && !l.alive.Has(c)
}

// Clear empties both the alive set and the staging area.
func (l *Lattice) Clear() {
	clear(l.alive)
	clear(l.pending)
}

// IsAlive reports whether c is in the committed generation.
func (l *Lattice) IsAlive(c core.Coord) bool { return l.alive.Has(c) }

// Len returns the number of live cells.
func (l *Lattice) Len() int { return l.alive.Len() }

// PendingLen returns the number of staged coordinates.
func (l *Lattice) PendingLen() int { return len(l.pending) }

// Alive yields the committed generation. The sequence reads the live set
// directly and must not be consumed concurrently with a commit.
func (l *Lattice) Alive() iter.Seq[core.Coord] { return l.alive.All() }

// Snapshot returns an independent copy of the committed generation.
func (l *Lattice) Snapshot() core.Set { return l.alive.Clone() }
