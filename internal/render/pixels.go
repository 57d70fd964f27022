package render

import "image/color"

// Background is the colour of dead cells.
var Background = color.RGBA{R: 12, G: 14, B: 18, A: 255}

// AgePalette returns levels colours: Background at index 0 followed by a
// ramp from bright green for newborn cells to deep teal for old ones.
func AgePalette(levels int) []color.RGBA {
	if levels < 2 {
		levels = 2
	}
	young := color.RGBA{R: 170, G: 255, B: 120, A: 255}
	old := color.RGBA{R: 20, G: 110, B: 130, A: 255}
	p := make([]color.RGBA, levels)
	p[0] = Background
	steps := levels - 2
	for i := 1; i < levels; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i-1) / float64(steps)
		}
		p[i] = lerpRGBA(young, old, t)
	}
	return p
}

// fillBinaryRGBA converts binary cell data (0/non-zero) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end use the last entry. When the palette is empty the buffer is
// cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
