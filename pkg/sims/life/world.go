package life

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"sparse-life/pkg/core"
)

// Options configures a World.
type Options struct {
	Edge      int
	Duration  time.Duration
	Workers   int
	Seed      int64
	Paused    bool
	Generator Generator
}

// DefaultOptions returns the standard configuration: the literal demo
// pattern stepping every 100ms inside the default boundary.
func DefaultOptions() Options {
	return Options{
		Edge:      DefaultEdge,
		Duration:  core.DefaultDuration,
		Seed:      1337,
		Generator: PatternGenerator{Rows: DefaultPattern},
	}
}

// Status is the read-only summary exposed to control surfaces.
type Status struct {
	Duration   time.Duration
	Generation uint64
	Alive      int
	Pending    int
	Paused     bool
	Progress   float64
}

// DurationMS returns the step duration in whole milliseconds.
func (s Status) DurationMS() int64 { return s.Duration.Milliseconds() }

func (s Status) String() string {
	return fmt.Sprintf("Speed: %dms/age\nAge: %d\nCells: %d", s.DurationMS(), s.Generation, s.Alive)
}

// StepReport describes one committed generation.
type StepReport struct {
	Generation uint64
	Alive      int
	Born       int
	Died       int
	Elapsed    time.Duration
	Duration   time.Duration
}

// World owns the lattice and everything that mutates it. Stepping, reset and
// staging are serialised by a mutex so front-ends may drive the world from
// more than one goroutine.
type World struct {
	mu sync.Mutex

	lattice *Lattice
	engine  Engine
	rate    *core.RateController
	editor  Editor
	gen     Generator

	seed       int64
	generation uint64
	version    uint64

	observer func(StepReport)
}

// New constructs a World and populates it from the configured generator.
func New(opts Options) *World {
	if opts.Generator == nil {
		opts.Generator = PatternGenerator{Rows: DefaultPattern}
	}
	if opts.Edge < 0 {
		opts.Edge = 0
	}
	w := &World{
		lattice: NewLattice(Boundary{Edge: opts.Edge}),
		engine:  Engine{Workers: opts.Workers},
		rate:    core.NewRateController(opts.Duration),
		gen:     opts.Generator,
	}
	w.rate.SetPaused(opts.Paused)
	w.Reset(opts.Seed)
	return w
}

// Name identifies the simulation.
func (w *World) Name() string { return "life" }

// SetObserver registers fn to be called after every committed generation.
// The callback runs with the world locked and must not call back into it.
func (w *World) SetObserver(fn func(StepReport)) {
	w.mu.Lock()
	w.observer = fn
	w.mu.Unlock()
}

// Tick advances the countdown by dt and runs one generation when it is due.
// It reports whether a generation was committed.
func (w *World) Tick(dt time.Duration) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.rate.Advance(dt) {
		return false
	}
	w.step()
	return true
}

// Step runs exactly one generation regardless of the countdown or pause state.
func (w *World) Step() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step()
}

func (w *World) step() {
	start := time.Now()
	births, deaths := w.engine.Evaluate(w.lattice.alive)
	res := w.lattice.Commit(births, deaths)
	w.generation++
	w.version++
	if w.observer != nil {
		w.observer(StepReport{
			Generation: w.generation,
			Alive:      w.lattice.Len(),
			Born:       res.Born,
			Died:       res.Died,
			Elapsed:    time.Since(start),
			Duration:   w.rate.Duration(),
		})
	}
}

// Reset discards every cell, rewinds the generation counter and repopulates
// the lattice from the generator. The new cells are committed immediately.
func (w *World) Reset(seed int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seed = seed
	w.lattice.Clear()
	w.generation = 0
	w.rate.Restart()
	for _, c := range w.gen.Generate(seed) {
		w.lattice.StageSpawn(c)
	}
	w.lattice.Commit(nil, nil)
	w.version++
}

// Seed returns the seed used by the last reset.
func (w *World) Seed() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seed
}

// SetGenerator replaces the generator used by subsequent resets.
func (w *World) SetGenerator(g Generator) {
	if g == nil {
		return
	}
	w.mu.Lock()
	w.gen = g
	w.mu.Unlock()
}

// Paint stages the cell under p while active is set. See Editor.Apply.
func (w *World) Paint(p Pointer, active bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.editor.Apply(w.lattice, p, active)
	return ok
}

// SpeedUp halves the step duration.
func (w *World) SpeedUp() {
	w.mu.Lock()
	w.rate.SpeedUp()
	w.mu.Unlock()
}

// SlowDown doubles the step duration.
func (w *World) SlowDown() {
	w.mu.Lock()
	w.rate.SlowDown()
	w.mu.Unlock()
}

// TogglePause flips the pause flag and returns the new value.
func (w *World) TogglePause() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rate.TogglePause()
}

// Do executes a control command. CmdReset reuses the current seed.
func (w *World) Do(cmd Command) {
	switch cmd {
	case CmdSpeedUp:
		w.SpeedUp()
	case CmdSlowDown:
		w.SlowDown()
	case CmdTogglePause:
		w.TogglePause()
	case CmdReset:
		w.Reset(w.Seed())
	case CmdStep:
		w.Step()
	}
}

// Status returns the display tuple.
func (w *World) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Status{
		Duration:   w.rate.Duration(),
		Generation: w.generation,
		Alive:      w.lattice.Len(),
		Pending:    w.lattice.PendingLen(),
		Paused:     w.rate.Paused(),
		Progress:   w.rate.Progress(),
	}
}

// Version increases on every commit, including resets. Presentation layers
// compare it against the value they last rendered.
func (w *World) Version() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.version
}

// Boundary returns the insertion bounds.
func (w *World) Boundary() Boundary {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lattice.Boundary()
}

// IsAlive reports whether c is in the committed generation.
func (w *World) IsAlive(c core.Coord) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lattice.IsAlive(c)
}

// Alive yields the committed generation without copying. Consume it on the
// goroutine that drives Tick; use Snapshot elsewhere.
func (w *World) Alive() iter.Seq[core.Coord] { return w.lattice.Alive() }

// Snapshot returns a copy of the committed generation.
func (w *World) Snapshot() core.Set {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lattice.Snapshot()
}
