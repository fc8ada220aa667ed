package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/balidani/coaster-generator/pkg/generator"
	"github.com/balidani/coaster-generator/pkg/td6"
	"github.com/balidani/coaster-generator/pkg/track"
	"github.com/balidani/coaster-generator/pkg/validation"
)

// loadOptions resolves the generation options: defaults, then the optional
// tuning file, then the seed flag on top.
func loadOptions(configPath string, seed int64) (generator.Options, error) {
	opts := generator.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = generator.LoadOptions(configPath)
		if err != nil {
			return opts, fmt.Errorf("loading config: %w", err)
		}
	}
	if seed != 0 {
		opts.Seed = seed
	}
	return opts, nil
}

func runGenerate(templatePath, outputPath, configPath, reportPath string, seed int64) error {
	opts, err := loadOptions(configPath, seed)
	if err != nil {
		return err
	}
	opts.Logger = log.New(os.Stdout, "", 0)

	check := opts.Check()
	if !check.Valid {
		printValidationReport(check)
		return fmt.Errorf("options have validation errors")
	}

	design, err := td6.Load(templatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load failed: %v\n", err)
		os.Exit(-1)
	}
	design.Tracks = nil
	design.Entrances = nil

	start := time.Now()
	layout, err := generator.New(opts).Generate()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	design.Tracks = layout.Pieces
	if err := td6.Save(outputPath, design); err != nil {
		// Generation itself succeeded; report the export failure but keep
		// the zero exit status.
		fmt.Fprintf(os.Stderr, "Failed saving track: %v\n", err)
	}

	if reportPath != "" {
		if err := writeRunReport(reportPath, templatePath, outputPath, layout, elapsed); err != nil {
			fmt.Fprintf(os.Stderr, "Failed writing run report: %v\n", err)
		}
	}

	fmt.Printf("Ok: %d\n", len(layout.Pieces))
	return nil
}

func runInspect(designPath string) error {
	design, err := td6.Load(designPath)
	if err != nil {
		return fmt.Errorf("loading design: %w", err)
	}

	type element struct {
		Index    int    `json:"index"`
		ID       uint8  `json:"id"`
		Name     string `json:"name"`
		Rotation uint8  `json:"rotation"`
	}
	elements := make([]element, len(design.Tracks))
	histogram := make(map[string]int)
	for i, t := range design.Tracks {
		elements[i] = element{
			Index:    i,
			ID:       uint8(t.ID),
			Name:     t.ID.String(),
			Rotation: t.Rotation,
		}
		histogram[t.ID.String()]++
	}

	output := map[string]any{
		"path":      designPath,
		"elements":  elements,
		"entrances": design.Entrances,
		"histogram": histogram,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runVerify(designPath string) error {
	design, err := td6.Load(designPath)
	if err != nil {
		return fmt.Errorf("loading design: %w", err)
	}

	report := validation.CheckDesign(
		track.NewCatalog(), track.NewTables(), design.Tracks, validation.DefaultConfig())
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}
