package ui

import (
	"image"

	"sparse-life/pkg/sims/life"
)

// Button is a clickable control mapped to a world command.
type Button struct {
	Label string
	Cmd   life.Command
	Rect  image.Rectangle
}

// Buttons lays out the control row: slower, faster, play/pause and reset.
// The pause button shows the action a click would take.
func Buttons(paused bool) []Button {
	toggle := "||"
	if paused {
		toggle = ">"
	}
	labels := []struct {
		label string
		cmd   life.Command
	}{
		{"-", life.CmdSlowDown},
		{"+", life.CmdSpeedUp},
		{toggle, life.CmdTogglePause},
		{"R", life.CmdReset},
	}
	out := make([]Button, len(labels))
	for i, l := range labels {
		x := panelPadding + i*(buttonSize+buttonGap)
		out[i] = Button{
			Label: l.label,
			Cmd:   l.cmd,
			Rect:  image.Rect(x, panelPadding, x+buttonSize, panelPadding+buttonSize),
		}
	}
	return out
}

// HitButton returns the command of the button under (x, y).
func HitButton(buttons []Button, x, y int) (life.Command, bool) {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Cmd, true
		}
	}
	return 0, false
}

// ProgressRect returns the filled part of the progress bar for a countdown
// fraction in [0, 1].
func ProgressRect(progress float64) image.Rectangle {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	r := progressBounds()
	r.Max.X = r.Min.X + int(float64(r.Dx())*progress)
	return r
}

// PanelRect is the screen area owned by the HUD. Pointer input inside it
// does not reach the lattice.
func PanelRect() image.Rectangle {
	return image.Rect(0, 0, panelWidth, scoreTop+scoreHeight+panelPadding)
}

func progressBounds() image.Rectangle {
	top := panelPadding + buttonSize + buttonGap
	return image.Rect(panelPadding, top, panelWidth-panelPadding, top+progressHeight)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	panelWidth     = 4*buttonSize + 3*buttonGap + 2*panelPadding
	buttonSize     = 32
	buttonGap      = 6
	progressHeight = 6
	lineHeight     = 16
	scoreTop       = panelPadding + buttonSize + buttonGap + progressHeight + buttonGap
	scoreHeight    = 3 * lineHeight
)
