//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sparse-life/internal/core"
)

// GridPainter uploads a ByteGrid into a single RGBA image and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter; its image is allocated on first use.
func NewGridPainter() *GridPainter { return &GridPainter{} }

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.img = ebiten.NewImage(w, h)
	gp.buf = make([]byte, 4*w*h)
}

// Blit colours grid through palette and draws it with its top-left corner at
// (ox, oy), each cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, palette []color.RGBA, ox, oy, scale float64) {
	gp.ensure(grid.W, grid.H)
	fillPaletteRGBA(gp.buf, grid.Cells(), palette)
	gp.draw(dst, ox, oy, scale)
}

// BlitBinary draws grid in two colours.
func (gp *GridPainter) BlitBinary(dst *ebiten.Image, grid *core.ByteGrid, on, off color.Color, ox, oy, scale float64) {
	gp.ensure(grid.W, grid.H)
	fillBinaryRGBA(gp.buf, grid.Cells(), on, off)
	gp.draw(dst, ox, oy, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, ox, oy, scale float64) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
