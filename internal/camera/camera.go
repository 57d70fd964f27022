// Package camera provides a 2D camera for viewing an unbounded lattice.
package camera

import "math"

// Camera maps screen pixels to lattice coordinates. Cell (x, y) covers the
// world square centred on (x, y) with side 1.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom in pixels per cell
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Limit bounds the camera center to [-Limit, Limit] on both axes.
	// Zero means unbounded.
	Limit float64

	MinZoom, MaxZoom float64

	homeZoom float64
}

// New creates a camera centred on the origin.
func New(viewportW, viewportH, zoom, limit float64) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Limit:     limit,
		MinZoom:   1,
		MaxZoom:   64,
	}
	c.SetZoom(zoom)
	c.homeZoom = c.Zoom
	return c
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// CellOrigin returns the screen position of the top-left corner of cell
// (x, y).
func (c *Camera) CellOrigin(x, y int) (sx, sy float64) {
	return c.WorldToScreen(float64(x)-0.5, float64(y)-0.5)
}

// Rect is an inclusive range of lattice coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// W returns the number of columns in r.
func (r Rect) W() int { return r.MaxX - r.MinX + 1 }

// H returns the number of rows in r.
func (r Rect) H() int { return r.MaxY - r.MinY + 1 }

// VisibleCells returns every cell at least partly on screen.
func (c *Camera) VisibleCells() Rect {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(c.ViewportW, c.ViewportH)
	return Rect{
		MinX: int(math.Ceil(x0 - 0.5)),
		MinY: int(math.Ceil(y0 - 0.5)),
		MaxX: int(math.Ceil(x1 - 0.5)),
		MaxY: int(math.Ceil(y1 - 0.5)),
	}
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X = c.limit(c.X + dx/c.Zoom)
	c.Y = c.limit(c.Y + dy/c.Zoom)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	c.X = c.limit(wx - (sx-c.ViewportW/2)/c.Zoom)
	c.Y = c.limit(wy - (sy-c.ViewportH/2)/c.Zoom)
}

// Reset returns the camera to the origin and its initial zoom.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = c.homeZoom
}

func (c *Camera) limit(v float64) float64 {
	if c.Limit <= 0 {
		return v
	}
	return clamp(v, -c.Limit, c.Limit)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
