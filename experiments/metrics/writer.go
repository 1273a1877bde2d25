package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type RollCountRecord struct {
	NumRolls     int
	AverageScore float64
}

type WinRateRecord struct {
	Strategy     string
	Baseline     string
	AsPlayerZero float64
	AsPlayerOne  float64
	WinRate      float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp to
// hold the reports of one experiment run.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores the experiment configuration as JSON.
func (w *Writer) WriteSetup(setup any) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteRollCounts(records []RollCountRecord) error {
	header := []string{"num_rolls", "average_score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.NumRolls),
			formatFloat(record.AverageScore),
		})
	}
	return w.writeCSV("roll_counts.csv", header, rows)
}

func (w *Writer) WriteWinRates(records []WinRateRecord) error {
	header := []string{"strategy", "baseline", "as_player_0", "as_player_1", "win_rate"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Strategy,
			record.Baseline,
			formatFloat(record.AsPlayerZero),
			formatFloat(record.AsPlayerOne),
			formatFloat(record.WinRate),
		})
	}
	return w.writeCSV("win_rates.csv", header, rows)
}

func (w *Writer) WriteEvaluations(records []EvaluationMetric) error {
	header := []string{"name", "goroutines", "samples", "trials", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Name,
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Samples),
			strconv.Itoa(record.Trials),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("evaluations.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
