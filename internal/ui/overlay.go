//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sparse-life/internal/camera"
	"sparse-life/pkg/sims/life"
)

// Overlay draws optional guides on top of the lattice: the boundary square
// (toggled with B) and the cell under the pointer.
type Overlay struct {
	showEdge bool
	showCell bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{showEdge: true, showCell: true}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showEdge = !o.showEdge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCell = !o.showCell
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cam *camera.Camera, bounds life.Boundary) {
	if o.showEdge {
		e := bounds.Edge
		x0, y0 := cam.CellOrigin(-e, -e)
		x1, y1 := cam.CellOrigin(e+1, e+1)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1,
			color.RGBA{R: 220, G: 90, B: 60, A: 200}, false)
	}

	if o.showCell {
		mx, my := ebiten.CursorPosition()
		wx, wy := cam.ScreenToWorld(float64(mx), float64(my))
		c, ok := life.CellAt(wx, wy)
		if !ok {
			return
		}
		sx, sy := cam.CellOrigin(c.X, c.Y)
		z := float32(cam.Zoom)
		vector.StrokeRect(screen, float32(sx), float32(sy), z, z, 1,
			color.RGBA{R: 255, G: 255, B: 255, A: 120}, false)
	}
}
