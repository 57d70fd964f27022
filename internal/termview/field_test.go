package termview

import (
	"strings"
	"testing"

	"sparse-life/internal/core"
)

func TestFieldRectCentred(t *testing.T) {
	r := fieldRect(10, -4, 5, 3)
	if r.MinX != 8 || r.MaxX != 12 || r.MinY != -5 || r.MaxY != -3 {
		t.Fatalf("fieldRect = %+v", r)
	}
	if r.W() != 5 || r.H() != 3 {
		t.Fatalf("rect is %dx%d, want 5x3", r.W(), r.H())
	}
}

func TestRenderField(t *testing.T) {
	grid := core.NewByteGrid(3, 2)
	grid.Set(0, 0, 1)
	grid.Set(2, 1, 9)
	fillers := []string{"", "a", "b"}

	got := renderField(grid, fillers)
	want := "a  \n  b"
	if got != want {
		t.Fatalf("renderField = %q, want %q", got, want)
	}
}

func TestRenderFieldWithoutFillers(t *testing.T) {
	grid := core.NewByteGrid(2, 1)
	grid.Set(0, 0, 1)
	if got := renderField(grid, nil); got != "  " {
		t.Fatalf("renderField = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "[....]"},
		{0.5, "[##..]"},
		{1, "[####]"},
		{3, "[####]"},
		{-1, "[....]"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.p, 4); got != tt.want {
			t.Errorf("progressBar(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
	if progressBar(0.5, 0) != "" {
		t.Error("zero width bar not empty")
	}
}

func TestAgeFillersCoverLevels(t *testing.T) {
	if ageFillers[0] != "" {
		t.Fatal("index 0 is reserved for dead cells")
	}
	for i, f := range ageFillers[1:] {
		if !strings.Contains(f, "█") {
			t.Errorf("filler %d = %q", i+1, f)
		}
	}
}
