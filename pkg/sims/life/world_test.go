package life

import (
	"testing"
	"time"

	"sparse-life/pkg/core"
)

func blinkerWorld(t *testing.T) *World {
	t.Helper()
	opts := DefaultOptions()
	opts.Generator = PatternGenerator{Rows: []string{".#.", ".#.", ".#."}}
	return New(opts)
}

func TestNewWorldIsPopulated(t *testing.T) {
	w := blinkerWorld(t)
	st := w.Status()
	if st.Alive != 3 || st.Generation != 0 || st.Pending != 0 {
		t.Fatalf("unexpected initial status %+v", st)
	}
}

func TestTickStepsWhenDue(t *testing.T) {
	w := blinkerWorld(t)
	if w.Tick(50 * time.Millisecond) {
		t.Fatal("stepped before the duration elapsed")
	}
	if !w.Tick(50 * time.Millisecond) {
		t.Fatal("expected a step after 100ms")
	}
	if got := w.Status().Generation; got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}
	want := core.NewSet(core.C(0, 1), core.C(1, 1), core.C(2, 1))
	if !w.Snapshot().Equal(want) {
		t.Fatalf("alive = %v, want %v", w.Snapshot().Sorted(), want.Sorted())
	}
}

func TestPausedTicksDoNotStep(t *testing.T) {
	w := blinkerWorld(t)
	w.Do(CmdTogglePause)
	for i := 0; i < 100; i++ {
		w.Tick(time.Second)
	}
	if got := w.Status().Generation; got != 0 {
		t.Fatalf("generation = %d while paused, want 0", got)
	}
	if !w.Status().Paused {
		t.Fatal("status does not report pause")
	}
}

func TestStepIgnoresPause(t *testing.T) {
	w := blinkerWorld(t)
	w.TogglePause()
	w.Do(CmdStep)
	if got := w.Status().Generation; got != 1 {
		t.Fatalf("generation = %d, want 1", got)
	}
}

func TestPaintAppearsAtNextGeneration(t *testing.T) {
	opts := DefaultOptions()
	opts.Generator = PatternGenerator{Rows: []string{"##", "##"}}
	w := New(opts)

	if !w.Paint(Pointer{X: 10, Y: 10, Valid: true}, true) {
		t.Fatal("paint was not staged")
	}
	if w.IsAlive(core.C(10, 10)) {
		t.Fatal("paint became visible before the generation boundary")
	}
	before := w.Status().Generation
	w.Step()
	if !w.IsAlive(core.C(10, 10)) {
		t.Fatal("painted cell missing after commit")
	}
	if w.Status().Generation != before+1 {
		t.Fatal("generation must advance exactly once per commit")
	}
}

func TestPaintDoesNotAdvanceGeneration(t *testing.T) {
	w := blinkerWorld(t)
	v := w.Version()
	w.Paint(Pointer{X: 5, Y: 5, Valid: true}, true)
	if w.Status().Generation != 0 || w.Version() != v {
		t.Fatal("staging an edit must not commit")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	w := New(Options{
		Edge:      100,
		Duration:  core.DefaultDuration,
		Seed:      11,
		Generator: NoiseGenerator{HalfExtent: 20, Layers: []NoiseLayer{{Frequency: 0.2, Lo: 0.5, Hi: 1}}},
	})
	initial := w.Snapshot()
	for i := 0; i < 5; i++ {
		w.Step()
	}
	w.Paint(Pointer{X: 50, Y: 50, Valid: true}, true)
	w.Do(CmdReset)

	st := w.Status()
	if st.Generation != 0 || st.Pending != 0 {
		t.Fatalf("status after reset = %+v", st)
	}
	if !w.Snapshot().Equal(initial) {
		t.Fatal("reset with the same seed did not reproduce the initial pattern")
	}
}

func TestSpeedCommands(t *testing.T) {
	w := blinkerWorld(t)
	for i := 0; i < 10; i++ {
		w.Do(CmdSpeedUp)
	}
	if got := w.Status().DurationMS(); got != 10 {
		t.Fatalf("duration = %dms, want 10", got)
	}
	w.Do(CmdSlowDown)
	if got := w.Status().DurationMS(); got != 20 {
		t.Fatalf("duration = %dms, want 20", got)
	}
}

func TestStatusString(t *testing.T) {
	st := Status{Duration: 100 * time.Millisecond, Generation: 7, Alive: 42}
	want := "Speed: 100ms/age\nAge: 7\nCells: 42"
	if got := st.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestObserverSeesEveryCommit(t *testing.T) {
	w := blinkerWorld(t)
	var reports []StepReport
	w.SetObserver(func(r StepReport) { reports = append(reports, r) })
	w.Step()
	w.Step()
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	r := reports[0]
	if r.Generation != 1 || r.Alive != 3 || r.Born != 2 || r.Died != 2 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestParseCommand(t *testing.T) {
	for _, c := range []Command{CmdSpeedUp, CmdSlowDown, CmdTogglePause, CmdReset, CmdStep} {
		got, ok := ParseCommand(c.String())
		if !ok || got != c {
			t.Errorf("ParseCommand(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCommand("explode"); ok {
		t.Error("unknown command parsed")
	}
}
