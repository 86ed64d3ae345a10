package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/stockforge/internal/generator"
)

func TestWriteJSON(t *testing.T) {
	ds, err := generator.Generate(generator.Options{
		Preset: generator.PresetSmall,
		Seed:   42,
		Now:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	manifest, err := Write(ds, Options{Path: dir, Format: "json", Seed: 42, Preset: "small"})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if manifest.RunID == "" {
		t.Error("manifest has no run ID")
	}
	if manifest.Seed != 42 || manifest.Preset != "small" {
		t.Errorf("manifest run parameters wrong: %+v", manifest)
	}
	if len(manifest.Collections) != 38 {
		t.Errorf("manifest collections = %d, want 38", len(manifest.Collections))
	}
	if manifest.TotalRows != ds.TotalRows() {
		t.Errorf("manifest total rows = %d, want %d", manifest.TotalRows, ds.TotalRows())
	}

	// Every collection file exists and the product dump round-trips.
	for name, count := range manifest.Collections {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing export file for %s: %v", name, err)
			continue
		}
		if name == "products" {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			var rows []map[string]any
			if err := json.Unmarshal(data, &rows); err != nil {
				t.Fatalf("products export is not valid JSON: %v", err)
			}
			if len(rows) != count {
				t.Errorf("products file has %d rows, manifest says %d", len(rows), count)
			}
			if _, ok := rows[0]["sku"]; !ok {
				t.Error("product rows are missing the sku field")
			}
		}
	}

	// The manifest itself is on disk and parseable.
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest.json not written: %v", err)
	}
	var onDisk Manifest
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("manifest.json is not valid JSON: %v", err)
	}
	if onDisk.RunID != manifest.RunID {
		t.Error("manifest on disk differs from the returned one")
	}
}

func TestWriteYAML(t *testing.T) {
	ds, err := generator.Generate(generator.Options{
		Preset: generator.PresetSmall,
		Seed:   7,
		Now:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if _, err := Write(ds, Options{Path: dir, Format: "yaml", Seed: 7, Preset: "small"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "vendors.yaml")); err != nil {
		t.Errorf("missing vendors.yaml: %v", err)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	ds, err := generator.Generate(generator.Options{
		Preset: generator.PresetSmall,
		Seed:   1,
		Now:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Write(ds, Options{Path: t.TempDir(), Format: "xml"}); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
