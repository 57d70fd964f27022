package render

import (
	"image/color"
	"testing"

	"sparse-life/internal/camera"
	"sparse-life/internal/core"
	"sparse-life/internal/scene"
	lcore "sparse-life/pkg/core"
)

func TestAgePalette(t *testing.T) {
	p := AgePalette(5)
	if len(p) != 5 || p[0] != Background {
		t.Fatalf("unexpected palette %v", p)
	}
	if p[1] == p[4] {
		t.Fatal("young and old cells share a colour")
	}
	if got := AgePalette(0); len(got) != 2 {
		t.Fatalf("degenerate palette has %d entries, want 2", len(got))
	}
}

func TestFillPaletteClampsIndex(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 1, A: 255}, {R: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 2, 9}, palette)
	if buf[0] != 0 || buf[4] != 2 || buf[8] != 2 {
		t.Fatalf("unexpected pixels %v", buf)
	}
	fillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d after clearing", i, b)
		}
	}
}

func TestFillBinary(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	if buf[0] != 255 || buf[3] != 255 || buf[4] != 0 || buf[7] != 255 {
		t.Fatalf("unexpected pixels %v", buf)
	}
}

func TestAgeLevel(t *testing.T) {
	tests := []struct{ age, levels, want int }{
		{0, 8, 1},
		{3, 8, 4},
		{100, 8, 7},
		{-1, 8, 1},
		{5, 1, 1},
	}
	for _, tt := range tests {
		if got := AgeLevel(tt.age, tt.levels); int(got) != tt.want {
			t.Errorf("AgeLevel(%d, %d) = %d, want %d", tt.age, tt.levels, got, tt.want)
		}
	}
}

func TestRasterizeClipsToView(t *testing.T) {
	view := camera.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	alive := lcore.NewSet(lcore.C(0, 0), lcore.C(1, -1), lcore.C(5, 5))
	grid := core.NewByteGrid(1, 1)
	Rasterize(grid, view, alive.All())

	if grid.W != 3 || grid.H != 3 {
		t.Fatalf("grid is %dx%d, want 3x3", grid.W, grid.H)
	}
	if grid.At(1, 1) != 1 || grid.At(2, 0) != 1 {
		t.Fatal("visible cells missing")
	}
	n := 0
	for _, v := range grid.Cells() {
		if v != 0 {
			n++
		}
	}
	if n != 2 {
		t.Fatalf("%d cells set, want 2", n)
	}
}

func TestRasterizeAges(t *testing.T) {
	s := scene.New()
	s.Sync(lcore.NewSet(lcore.C(0, 0)).All())
	s.Sync(lcore.NewSet(lcore.C(0, 0), lcore.C(1, 0)).All())

	grid := core.NewByteGrid(1, 1)
	RasterizeAges(grid, camera.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 0}, s, 4)
	if grid.At(0, 0) != 2 || grid.At(1, 0) != 1 {
		t.Fatalf("ages rasterized as %v", grid.Cells())
	}
}
