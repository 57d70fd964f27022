package termview

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"sparse-life/internal/camera"
	"sparse-life/internal/core"
)

// ageFillers colour live cells by age level: newborn, young, settled, old.
var ageFillers = []string{
	"",
	aurora.BrightGreen("█").String(),
	aurora.Green("█").String(),
	aurora.Cyan("█").String(),
	aurora.Blue("█").String(),
}

const deadFiller = " "

// fieldRect returns the lattice window shown in a w×h view centred on
// (cx, cy).
func fieldRect(cx, cy, w, h int) camera.Rect {
	minX := cx - w/2
	minY := cy - h/2
	return camera.Rect{MinX: minX, MinY: minY, MaxX: minX + w - 1, MaxY: minY + h - 1}
}

// renderField turns a rasterised window into terminal rows, one character
// per cell. Values index fillers, clamped to the last entry.
func renderField(grid *core.ByteGrid, fillers []string) string {
	var b strings.Builder
	last := len(fillers) - 1
	for y := 0; y < grid.H; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < grid.W; x++ {
			v := int(grid.At(x, y))
			switch {
			case v == 0 || last < 1:
				b.WriteString(deadFiller)
			case v > last:
				b.WriteString(fillers[last])
			default:
				b.WriteString(fillers[v])
			}
		}
	}
	return b.String()
}

// progressBar draws the countdown fraction as a fixed-width text bar.
func progressBar(p float64, width int) string {
	if width <= 0 {
		return ""
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	n := int(p * float64(width))
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", width-n) + "]"
}
