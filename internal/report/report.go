// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML summary of a conversion run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-toolkit/internal/convert"
)

// Entry describes one converted item.
type Entry struct {
	Source  string   `yaml:"source"`
	Status  string   `yaml:"status"`
	Outputs []string `yaml:"outputs,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

// Report is the YAML document written for a run.
type Report struct {
	Mode        string    `yaml:"mode"`
	Source      string    `yaml:"source"`
	Destination string    `yaml:"destination"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Converted   int       `yaml:"converted"`
	Skipped     int       `yaml:"skipped"`
	Failed      int       `yaml:"failed"`
	Items       []Entry   `yaml:"items"`
}

// FromBatch builds a Report from a finished batch.
func FromBatch(b convert.BatchResult, now time.Time) Report {
	r := Report{
		Mode:        string(b.Mode),
		Source:      b.Source,
		Destination: b.Destination,
		GeneratedAt: now.UTC(),
		Converted:   b.Converted,
		Skipped:     b.Skipped,
		Failed:      b.Failed,
		Items:       make([]Entry, 0, len(b.Items)),
	}
	for _, item := range b.Items {
		e := Entry{
			Source:  item.Source,
			Status:  string(item.Status),
			Outputs: item.Outputs,
		}
		if item.Err != nil {
			e.Error = item.Err.Error()
		}
		r.Items = append(r.Items, e)
	}
	return r
}

// Write marshals r as YAML to path, creating the parent folder if needed.
func Write(path string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
