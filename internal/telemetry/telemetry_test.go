package telemetry

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"sparse-life/internal/config"
	"sparse-life/pkg/sims/life"
)

func TestFromReport(t *testing.T) {
	rec := FromReport(life.StepReport{
		Generation: 3,
		Alive:      10,
		Born:       4,
		Died:       2,
		Elapsed:    1500 * time.Nanosecond,
		Duration:   250 * time.Millisecond,
	})
	if rec.Generation != 3 || rec.Alive != 10 || rec.ElapsedUS != 1.5 || rec.StepMS != 250 {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestNilOutputManagerIsNoop(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteGeneration(GenerationRecord{}); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
	if om.Dir() != "" {
		t.Fatal("nil manager reported a directory")
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := om.WriteGeneration(GenerationRecord{Generation: uint64(i), Alive: i * 10}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	var got []GenerationRecord
	if err := gocsv.UnmarshalFile(mustOpen(t, filepath.Join(dir, "generations.csv")), &got); err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if len(got) != 3 || got[2].Alive != 30 {
		t.Fatalf("read back %+v", got)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config.yaml not loadable: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	records := []GenerationRecord{
		{Generation: 1, Alive: 2, Born: 2, Died: 0, ElapsedUS: 10},
		{Generation: 2, Alive: 4, Born: 3, Died: 1, ElapsedUS: 20},
		{Generation: 3, Alive: 6, Born: 2, Died: 0, ElapsedUS: 30},
	}
	s := Summarize(records)
	if s.Generations != 3 || s.FinalAlive != 6 || s.TotalBorn != 7 || s.TotalDied != 1 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.AliveMean != 4 || s.AliveMin != 2 || s.AliveMax != 6 || s.AliveP50 != 4 {
		t.Fatalf("unexpected alive stats %+v", s)
	}
	if math.Abs(s.AliveStd-2) > 1e-9 {
		t.Fatalf("alive std = %v, want 2", s.AliveStd)
	}
	if s.ElapsedMean != 20 || s.ElapsedP90 != 30 {
		t.Fatalf("unexpected timing stats %+v", s)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatal("empty input must give the zero summary")
	}
}

func TestRecorderObservesWorld(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	w := life.New(life.DefaultOptions())
	rec := NewRecorder(om, nil, 0)
	w.SetObserver(rec.Observe)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	if err := rec.Err(); err != nil {
		t.Fatal(err)
	}
	if len(rec.Records()) != 5 {
		t.Fatalf("recorded %d generations, want 5", len(rec.Records()))
	}
	if got := rec.Summary().FinalAlive; got != w.Status().Alive {
		t.Fatalf("final alive = %d, want %d", got, w.Status().Alive)
	}
	if err := om.WriteSummary(rec.Summary()); err != nil {
		t.Fatal(err)
	}
}
