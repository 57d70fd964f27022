// Package telemetry records per-generation statistics for headless runs.
package telemetry

import (
	"log/slog"
	"time"

	"sparse-life/pkg/sims/life"
)

// GenerationRecord is one committed generation.
type GenerationRecord struct {
	Generation uint64  `csv:"generation"`
	Alive      int     `csv:"alive"`
	Born       int     `csv:"born"`
	Died       int     `csv:"died"`
	ElapsedUS  float64 `csv:"elapsed_us"`
	StepMS     int64   `csv:"step_ms"`
}

// FromReport converts an engine report into a record.
func FromReport(r life.StepReport) GenerationRecord {
	return GenerationRecord{
		Generation: r.Generation,
		Alive:      r.Alive,
		Born:       r.Born,
		Died:       r.Died,
		ElapsedUS:  float64(r.Elapsed) / float64(time.Microsecond),
		StepMS:     r.Duration.Milliseconds(),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (g GenerationRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("generation", g.Generation),
		slog.Int("alive", g.Alive),
		slog.Int("born", g.Born),
		slog.Int("died", g.Died),
		slog.Float64("elapsed_us", g.ElapsedUS),
		slog.Int64("step_ms", g.StepMS),
	)
}
