package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a run.
type Summary struct {
	Generations int     `csv:"generations"`
	FinalAlive  int     `csv:"final_alive"`
	AliveMean   float64 `csv:"alive_mean"`
	AliveStd    float64 `csv:"alive_std"`
	AliveMin    float64 `csv:"alive_min"`
	AliveP50    float64 `csv:"alive_p50"`
	AliveMax    float64 `csv:"alive_max"`
	TotalBorn   int     `csv:"total_born"`
	TotalDied   int     `csv:"total_died"`
	ElapsedMean float64 `csv:"elapsed_us_mean"`
	ElapsedP90  float64 `csv:"elapsed_us_p90"`
}

// Summarize computes population and timing statistics over records.
// Returns the zero Summary for an empty slice.
func Summarize(records []GenerationRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	alive := make([]float64, len(records))
	elapsed := make([]float64, len(records))
	s := Summary{Generations: len(records), FinalAlive: records[len(records)-1].Alive}
	for i, r := range records {
		alive[i] = float64(r.Alive)
		elapsed[i] = r.ElapsedUS
		s.TotalBorn += r.Born
		s.TotalDied += r.Died
	}

	s.AliveMean, s.AliveStd = stat.MeanStdDev(alive, nil)
	s.ElapsedMean = stat.Mean(elapsed, nil)

	slices.Sort(alive)
	slices.Sort(elapsed)
	s.AliveMin = alive[0]
	s.AliveMax = alive[len(alive)-1]
	s.AliveP50 = stat.Quantile(0.5, stat.Empirical, alive, nil)
	s.ElapsedP90 = stat.Quantile(0.9, stat.Empirical, elapsed, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Int("final_alive", s.FinalAlive),
		slog.Float64("alive_mean", s.AliveMean),
		slog.Float64("alive_std", s.AliveStd),
		slog.Float64("alive_p50", s.AliveP50),
		slog.Float64("alive_min", s.AliveMin),
		slog.Float64("alive_max", s.AliveMax),
		slog.Int("total_born", s.TotalBorn),
		slog.Int("total_died", s.TotalDied),
		slog.Float64("elapsed_us_mean", s.ElapsedMean),
		slog.Float64("elapsed_us_p90", s.ElapsedP90),
	)
}
