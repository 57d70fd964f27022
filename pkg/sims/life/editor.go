package life

import (
	"math"

	"sparse-life/pkg/core"
)

// maxPointer keeps float-to-int conversion exact.
const maxPointer = 1 << 52

// Pointer is a world-space pointer position. Valid is false when the
// pointer is outside the window or otherwise unavailable.
type Pointer struct {
	X, Y  float64
	Valid bool
}

// CellAt maps a world position to the nearest lattice cell using
// ceil(p - 0.5) per axis. Non-finite or out-of-range positions report false.
func CellAt(x, y float64) (core.Coord, bool) {
	cx, ok := round(x)
	if !ok {
		return core.Coord{}, false
	}
	cy, ok := round(y)
	if !ok {
		return core.Coord{}, false
	}
	return core.C(cx, cy), true
}

func round(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxPointer {
		return 0, false
	}
	return int(math.Ceil(v - 0.5)), true
}

// Editor turns pointer input into staged spawns. It never commits; painted
// cells appear at the next generation boundary together with rule births.
type Editor struct{}

// Apply stages the cell under p while active is set. It returns the target
// cell and whether anything was staged. Cells already alive and cells
// outside the lattice boundary are left alone.
func (Editor) Apply(l *Lattice, p Pointer, active bool) (core.Coord, bool) {
	if !active || !p.Valid {
		return core.Coord{}, false
	}
	c, ok := CellAt(p.X, p.Y)
	if !ok {
		return core.Coord{}, false
	}
	if l.IsAlive(c) || !l.Boundary().InBounds(c) {
		return c, false
	}
	l.StageSpawn(c)
	return c, true
}
