package core

import "time"

// Bounds and default for the generation step duration.
const (
	MinDuration     = 10 * time.Millisecond
	MaxDuration     = 10 * time.Second
	DefaultDuration = 100 * time.Millisecond
)

// ClampDuration pins d into [MinDuration, MaxDuration]. Non-positive values
// fall back to DefaultDuration.
func ClampDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultDuration
	}
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

// RateController gates generation steps on a repeating countdown fed by
// externally supplied frame deltas.
type RateController struct {
	step        time.Duration
	accumulator time.Duration
	paused      bool
}

// NewRateController constructs a controller firing every d (clamped).
func NewRateController(d time.Duration) *RateController {
	return &RateController{step: ClampDuration(d)}
}

// Duration returns the current step duration.
func (r *RateController) Duration() time.Duration { return r.step }

// SetDuration changes the step duration, clamped into range. The partially
// elapsed countdown is kept.
func (r *RateController) SetDuration(d time.Duration) {
	r.step = ClampDuration(d)
}

// SpeedUp halves the step duration.
func (r *RateController) SpeedUp() { r.SetDuration(r.step / 2) }

// SlowDown doubles the step duration.
func (r *RateController) SlowDown() { r.SetDuration(r.step * 2) }

// Paused reports whether the countdown is frozen.
func (r *RateController) Paused() bool { return r.paused }

// SetPaused freezes or resumes the countdown.
func (r *RateController) SetPaused(p bool) { r.paused = p }

// TogglePause flips the pause flag and returns the new value.
func (r *RateController) TogglePause() bool {
	r.paused = !r.paused
	return r.paused
}

// Restart discards the elapsed countdown.
func (r *RateController) Restart() { r.accumulator = 0 }

// Advance adds dt to the countdown and reports whether a step is due. At most
// one step is signalled per call: whole extra periods are dropped and only
// the fractional remainder is carried into the next countdown.
func (r *RateController) Advance(dt time.Duration) bool {
	if r.paused || dt <= 0 {
		return false
	}
	r.accumulator += dt
	if r.accumulator < r.step {
		return false
	}
	r.accumulator -= r.step
	if r.accumulator >= r.step {
		r.accumulator %= r.step
	}
	return true
}

// Progress returns how far the current countdown has elapsed, in [0, 1].
func (r *RateController) Progress() float64 {
	if r.step <= 0 {
		return 0
	}
	p := float64(r.accumulator) / float64(r.step)
	if p > 1 {
		return 1
	}
	return p
}
