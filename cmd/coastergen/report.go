package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/balidani/coaster-generator/pkg/generator"
)

// runReport is the JSON artifact written with --report. It records enough
// to reproduce a run (seed) and compare runs against each other.
type runReport struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Template    string         `json:"template"`
	Output      string         `json:"output"`
	Seed        int64          `json:"seed"`
	Attempts    int            `json:"attempts"`
	Backtracks  int            `json:"backtracks"`
	Pieces      int            `json:"pieces"`
	Histogram   map[string]int `json:"histogram"`
	ElapsedMS   int64          `json:"elapsed_ms"`
}

func writeRunReport(path, templatePath, outputPath string, layout *generator.Layout, elapsed time.Duration) error {
	histogram := make(map[string]int)
	for _, p := range layout.Pieces {
		histogram[p.ID.String()]++
	}

	report := runReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Template:    templatePath,
		Output:      outputPath,
		Seed:        layout.Seed,
		Attempts:    layout.Attempts,
		Backtracks:  layout.Backtracks,
		Pieces:      len(layout.Pieces),
		Histogram:   histogram,
		ElapsedMS:   elapsed.Milliseconds(),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
