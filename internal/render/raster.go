package render

import (
	"iter"

	"sparse-life/internal/camera"
	"sparse-life/internal/core"
	"sparse-life/internal/scene"
	lcore "sparse-life/pkg/core"
)

// AgeLevel maps a cell age onto a palette index in [1, levels-1].
func AgeLevel(age, levels int) uint8 {
	if levels < 2 {
		return 1
	}
	if age < 0 {
		age = 0
	}
	if age > levels-2 {
		age = levels - 2
	}
	return uint8(age + 1)
}

// RasterizeAges sizes dst to view and writes one byte per cell: 0 for dead
// cells, AgeLevel(age, levels) for cells in s.
func RasterizeAges(dst *core.ByteGrid, view camera.Rect, s *scene.Scene, levels int) {
	dst.Resize(view.W(), view.H())
	s.Each(func(c lcore.Coord, age int) {
		if view.Contains(c.X, c.Y) {
			dst.Set(c.X-view.MinX, c.Y-view.MinY, AgeLevel(age, levels))
		}
	})
}

// Rasterize sizes dst to view and marks every cell of alive inside it with 1.
func Rasterize(dst *core.ByteGrid, view camera.Rect, alive iter.Seq[lcore.Coord]) {
	dst.Resize(view.W(), view.H())
	for c := range alive {
		if view.Contains(c.X, c.Y) {
			dst.Set(c.X-view.MinX, c.Y-view.MinY, 1)
		}
	}
}
