package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sparse-life/pkg/core"
	"sparse-life/pkg/sims/life"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.World.Edge != life.DefaultEdge {
		t.Errorf("edge = %d, want %d", cfg.World.Edge, life.DefaultEdge)
	}
	if cfg.Timing.StepDuration != core.DefaultDuration {
		t.Errorf("step = %v, want %v", cfg.Timing.StepDuration, core.DefaultDuration)
	}
	if cfg.World.Generator != "noise" || len(cfg.Generator.Layers) != 2 {
		t.Errorf("unexpected generator section %+v", cfg.Generator)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "world:\n  seed: 9\ntiming:\n  step_duration: 250ms\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Seed != 9 || cfg.Timing.StepDuration != 250*time.Millisecond {
		t.Fatalf("overrides not applied: %+v %+v", cfg.World, cfg.Timing)
	}
	if cfg.World.Edge != life.DefaultEdge || cfg.View.TPS != 60 {
		t.Fatal("unset keys lost their defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Default()
	cfg.Timing.StepDuration = time.Hour
	cfg.Generator.Density = 4
	cfg.Generator.HalfExtent = 1 << 20
	cfg.Generator.Layers = []LayerConfig{{Frequency: -0.1, Lo: 0.9, Hi: 0.1}}
	cfg.Normalize()

	if cfg.Timing.StepDuration != core.MaxDuration {
		t.Errorf("step = %v, want %v", cfg.Timing.StepDuration, core.MaxDuration)
	}
	if cfg.Generator.Density != 1 {
		t.Errorf("density = %v, want 1", cfg.Generator.Density)
	}
	if cfg.Generator.HalfExtent != cfg.World.Edge {
		t.Errorf("half extent = %d, want edge %d", cfg.Generator.HalfExtent, cfg.World.Edge)
	}
	l := cfg.Generator.Layers[0]
	if l.Frequency != 0.1 || l.Lo != 0.1 || l.Hi != 0.9 {
		t.Errorf("layer not normalized: %+v", l)
	}
}

func TestWorldOptions(t *testing.T) {
	cfg := Default()
	cfg.World.Generator = "pattern"
	opts, err := cfg.WorldOptions()
	if err != nil {
		t.Fatalf("WorldOptions: %v", err)
	}
	w := life.New(opts)
	if w.Status().Alive == 0 {
		t.Fatal("built-in pattern produced an empty world")
	}

	cfg.World.Generator = "missing"
	if _, err := cfg.WorldOptions(); err == nil {
		t.Fatal("expected an error for an unknown generator")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.World.Seed = 77
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.World.Seed != 77 || got.Timing.StepDuration != cfg.Timing.StepDuration {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestFlagsApply(t *testing.T) {
	cfg := Default()
	f := Flags{Seed: 5, Step: time.Millisecond, Paused: true, Generator: "random"}
	f.Apply(cfg)
	if cfg.World.Seed != 5 || !cfg.Timing.Paused || cfg.World.Generator != "random" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Timing.StepDuration != core.MinDuration {
		t.Fatalf("step = %v, want clamped %v", cfg.Timing.StepDuration, core.MinDuration)
	}
	if cfg.View.TPS != 60 {
		t.Fatal("zero override replaced a configured value")
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.World.Seed = 12
	if got := cfg.ResolveSeed(); got != 12 {
		t.Fatalf("ResolveSeed() = %d, want 12", got)
	}
	cfg.World.Seed = 0
	got := cfg.ResolveSeed()
	if got == 0 || cfg.World.Seed != got {
		t.Fatalf("zero seed resolved to %d (stored %d)", got, cfg.World.Seed)
	}
}
