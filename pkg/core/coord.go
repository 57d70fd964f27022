package core

import (
	"cmp"
	"iter"
	"slices"
)

// Coord identifies a cell on the unbounded integer lattice.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Moore lists the offsets of the eight cells surrounding a coordinate.
var Moore = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// Neighbors returns the Moore neighbourhood of c.
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, d := range Moore {
		out[i] = c.Add(d)
	}
	return out
}

// Compare orders coordinates row-major (Y first, then X).
func Compare(a, b Coord) int {
	if n := cmp.Compare(a.Y, b.Y); n != 0 {
		return n
	}
	return cmp.Compare(a.X, b.X)
}

// Set is a sparse set of lattice coordinates.
type Set map[Coord]struct{}

// NewSet returns a set holding the given coordinates.
func NewSet(cs ...Coord) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c.
func (s Set) Add(c Coord) { s[c] = struct{}{} }

// Remove deletes c. Removing an absent coordinate is a no-op.
func (s Set) Remove(c Coord) { delete(s, c) }

// Has reports whether c is in the set.
func (s Set) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same coordinates.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// All yields every coordinate in unspecified order. The sequence can be
// ranged over any number of times.
func (s Set) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range s {
			if !yield(c) {
				return
			}
		}
	}
}

// Sorted returns the coordinates in row-major order.
func (s Set) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, Compare)
	return out
}
