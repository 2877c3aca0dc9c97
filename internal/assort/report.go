// Copyright 2026 katsuya1128. All rights reserved.

package assort

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/katsuya1128/pdfassort/internal/match"
	"github.com/katsuya1128/pdfassort/pkg/types"
)

// WriteReport saves the run configuration, match index and summary to a
// YAML file.
func WriteReport(path string, cfg types.AssortConfig, index *match.Index, outputs []types.OutputFile, summary types.RunSummary) error {
	rep := types.Report{
		Config:    cfg,
		Matches:   index.Snapshot(),
		Outputs:   outputs,
		Summary:   summary,
		Timestamp: time.Now(),
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var rep types.Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &rep, nil
}
