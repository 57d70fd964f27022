package telemetry

import (
	"log/slog"

	"sparse-life/pkg/sims/life"
)

// Recorder observes a world, forwarding every generation to an
// OutputManager and logging every logEvery-th one.
type Recorder struct {
	out      *OutputManager
	logger   *slog.Logger
	logEvery int

	records []GenerationRecord
	err     error
}

// NewRecorder returns a recorder. out and logger may be nil.
func NewRecorder(out *OutputManager, logger *slog.Logger, logEvery int) *Recorder {
	return &Recorder{out: out, logger: logger, logEvery: logEvery}
}

// Observe matches the life.World observer signature.
func (r *Recorder) Observe(rep life.StepReport) {
	rec := FromReport(rep)
	r.records = append(r.records, rec)
	if err := r.out.WriteGeneration(rec); err != nil && r.err == nil {
		r.err = err
	}
	if r.logger != nil && r.logEvery > 0 && rec.Generation%uint64(r.logEvery) == 0 {
		r.logger.Info("generation", "stats", rec)
	}
}

// Records returns every observed record.
func (r *Recorder) Records() []GenerationRecord { return r.records }

// Summary aggregates the observed records.
func (r *Recorder) Summary() Summary { return Summarize(r.records) }

// Err returns the first write error, if any.
func (r *Recorder) Err() error { return r.err }
