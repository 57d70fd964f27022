package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"sparse-life/internal/config"
)

// OutputManager writes run output into a directory. A nil manager discards
// everything, so callers need not check whether output is enabled.
type OutputManager struct {
	dir            string
	generationFile *os.File

	generationHeaderWritten bool
}

// NewOutputManager creates dir and opens generations.csv inside it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	return &OutputManager{dir: dir, generationFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGeneration appends a record to generations.csv. The header is written
// with the first record.
func (om *OutputManager) WriteGeneration(rec GenerationRecord) error {
	if om == nil {
		return nil
	}
	records := []GenerationRecord{rec}
	if !om.generationHeaderWritten {
		if err := gocsv.Marshal(records, om.generationFile); err != nil {
			return fmt.Errorf("writing generation: %w", err)
		}
		om.generationHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.generationFile); err != nil {
		return fmt.Errorf("writing generation: %w", err)
	}
	return nil
}

// WriteSummary saves the run summary as summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("creating summary.csv: %w", err)
	}
	defer f.Close()
	if err := gocsv.Marshal([]Summary{s}, f); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.generationFile == nil {
		return nil
	}
	return om.generationFile.Close()
}
