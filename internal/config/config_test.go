package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Grid.Rows != 40 || cfg.Grid.Cols != 60 {
		t.Errorf("grid = %dx%d, want 60x40", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if len(cfg.Spots) == 0 {
		t.Error("default config should include spots")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surfcast.yaml")
	data := `
grid:
  rows: 20
  cols: 30
classifier:
  probe_epsilon: 0.02
  probe_quorum: 2
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Rows != 20 || cfg.Grid.Cols != 30 {
		t.Errorf("grid = %dx%d, want 30x20", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Classifier.ProbeQuorum != 2 {
		t.Errorf("quorum = %d, want 2", cfg.Classifier.ProbeQuorum)
	}
	// Untouched sections keep their defaults
	if len(cfg.ColorStops) != 6 {
		t.Errorf("color stops = %d, want default 6", len(cfg.ColorStops))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/surfcast.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Grid.Cols = -5 }},
		{"zero epsilon", func(c *Config) { c.Classifier.ProbeEpsilon = 0 }},
		{"quorum too high", func(c *Config) { c.Classifier.ProbeQuorum = 5 }},
		{"no spots", func(c *Config) { c.Spots = nil }},
		{"one color stop", func(c *Config) { c.ColorStops = c.ColorStops[:1] }},
		{"unsorted stops", func(c *Config) {
			c.ColorStops[0], c.ColorStops[1] = c.ColorStops[1], c.ColorStops[0]
		}},
		{"bad hex", func(c *Config) { c.ColorStops[0].Color = "blue-ish" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestScaleAndSpotList(t *testing.T) {
	cfg := Default()

	scale, err := cfg.Scale()
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	min, max := scale.Domain()
	if min != 0.0 || max != 3.0 {
		t.Errorf("scale domain = (%v, %v), want (0, 3)", min, max)
	}

	spots := cfg.SpotList()
	if len(spots) != len(cfg.Spots) {
		t.Fatalf("SpotList() length = %d, want %d", len(spots), len(cfg.Spots))
	}
	if spots[3].Name != "Scheveningen" {
		t.Errorf("spot 3 = %s, want Scheveningen", spots[3].Name)
	}
}
