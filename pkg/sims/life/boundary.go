package life

import "sparse-life/pkg/core"

// DefaultEdge is the half-width of the square in which new cells may appear.
const DefaultEdge = 4000

// Boundary bounds where new cells may be created. It is consulted only when
// cells are inserted; cells already alive are never evicted.
type Boundary struct {
	Edge int
}

// InBounds reports whether |x| <= Edge and |y| <= Edge.
func (b Boundary) InBounds(c core.Coord) bool {
	return c.X >= -b.Edge && c.X <= b.Edge && c.Y >= -b.Edge && c.Y <= b.Edge
}
