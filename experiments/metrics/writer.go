package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type ResultRecord struct {
	Experiment string
	Kind       string // What Value measures, e.g. "win rate"
	Value      float64
	SampleMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteResults(records []ResultRecord) error {
	path := filepath.Join(w.baseDir, "results.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"experiment", "kind", "value", "samples", "seed", "goroutines", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Experiment,
			record.Kind,
			strconv.FormatFloat(record.Value, 'f', -1, 64),
			strconv.Itoa(record.Samples),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}
