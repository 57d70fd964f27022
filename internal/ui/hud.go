//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"sparse-life/pkg/sims/life"
)

// HUD draws the control panel in the top-left corner: speed buttons,
// play/pause, reset, the countdown progress bar and the scoreboard.
type HUD struct {
	status  life.Status
	buttons []Button
	hover   int
}

// NewHUD constructs an empty HUD; call Update before the first Draw.
func NewHUD() *HUD { return &HUD{hover: -1} }

// Update refreshes the cached status and returns the command of a button
// clicked this frame.
func (h *HUD) Update(status life.Status) (life.Command, bool) {
	h.status = status
	h.buttons = Buttons(status.Paused)

	mx, my := ebiten.CursorPosition()
	h.hover = -1
	for i, b := range h.buttons {
		if pointInRect(mx, my, b.Rect) {
			h.hover = i
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	return HitButton(h.buttons, mx, my)
}

// Captures reports whether the pointer at (x, y) belongs to the HUD.
func (h *HUD) Captures(x, y int) bool {
	return pointInRect(x, y, PanelRect())
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	panel := PanelRect()
	fillRect(screen, panel, color.RGBA{R: 16, G: 16, B: 20, A: 220})

	for i, b := range h.buttons {
		h.drawButton(screen, b, i == h.hover)
	}

	bar := progressBounds()
	fillRect(screen, bar, color.RGBA{R: 40, G: 42, B: 50, A: 255})
	fillRect(screen, ProgressRect(h.status.Progress), color.RGBA{R: 120, G: 220, B: 120, A: 255})

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range strings.Split(h.status.String(), "\n") {
		text.Draw(screen, line, face, panelPadding, scoreTop+(i+1)*lineHeight-4, fg)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, b Button, hovered bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	border := color.RGBA{A: 255}
	if hovered {
		border = color.RGBA{R: 64, G: 64, B: 64, A: 255}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			border = color.RGBA{R: 192, G: 192, B: 192, A: 255}
		}
	}
	fillRect(screen, b.Rect, bg)
	r := b.Rect
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, border, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, b.Label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func fillRect(dst *ebiten.Image, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
}
