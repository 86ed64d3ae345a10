// Package export writes a generated dataset to disk, one file per
// collection plus a manifest describing the run.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Lumos-Labs-HQ/stockforge/internal/dataset"
)

type Options struct {
	Path   string
	Format string // json or yaml
	Seed   int64
	Preset string
}

// Manifest records what a run produced, so a consumer can verify a fixture
// directory without re-generating it.
type Manifest struct {
	RunID       string         `json:"runId" yaml:"runId"`
	GeneratedAt string         `json:"generatedAt" yaml:"generatedAt"`
	Seed        int64          `json:"seed" yaml:"seed"`
	Preset      string         `json:"preset" yaml:"preset"`
	Format      string         `json:"format" yaml:"format"`
	TotalRows   int            `json:"totalRows" yaml:"totalRows"`
	Collections map[string]int `json:"collections" yaml:"collections"`
}

// Write dumps every collection into opts.Path and finishes with
// manifest.json. Existing files are overwritten.
func Write(ds *dataset.Dataset, opts Options) (*Manifest, error) {
	if err := os.MkdirAll(opts.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var marshal func(any) ([]byte, error)
	var ext string
	switch opts.Format {
	case "", "json":
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
		ext = "json"
	case "yaml":
		marshal = yaml.Marshal
		ext = "yaml"
	default:
		return nil, fmt.Errorf("unsupported export format: %s", opts.Format)
	}

	manifest := &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:        opts.Seed,
		Preset:      opts.Preset,
		Format:      ext,
		TotalRows:   ds.TotalRows(),
		Collections: make(map[string]int),
	}

	for _, collection := range ds.Collections() {
		manifest.Collections[collection.Name] = len(collection.Rows)

		data, err := marshal(collection.Rows)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", collection.Name, err)
		}
		filePath := filepath.Join(opts.Path, fmt.Sprintf("%s.%s", collection.Name, ext))
		if err := os.WriteFile(filePath, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filePath, err)
		}
	}

	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(opts.Path, "manifest.json")
	if err := os.WriteFile(manifestPath, manifestData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	color.Green("📦 Exported %d collections (%d rows) to %s", len(manifest.Collections), manifest.TotalRows, opts.Path)
	return manifest, nil
}
