// Package config loads the surfcast configuration from YAML, with
// defaults covering the Dutch North Sea coast out of the box.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JellevanE/surf-vibe-code/internal/colorscale"
	"github.com/JellevanE/surf-vibe-code/internal/geo"
	"github.com/JellevanE/surf-vibe-code/internal/models"
)

// Config is the full application configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Coastline  CoastlineConfig  `yaml:"coastline"`
	API        APIConfig        `yaml:"api"`
	Markers    MarkerConfig     `yaml:"markers"`
	ColorStops []StopConfig     `yaml:"color_stops"`
	Spots      []SpotConfig     `yaml:"spots"`
}

// GridConfig fixes the grid dimensions at construction.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ClassifierConfig holds the land/sea buffer tuning. The defaults are
// heuristics for the Dutch coastline geometry, not derived constants.
type ClassifierConfig struct {
	ProbeEpsilon float64 `yaml:"probe_epsilon"`
	ProbeQuorum  int     `yaml:"probe_quorum"`
}

// CoastlineConfig selects the boundary geometry source. When GeoJSON
// is set that file is used directly; otherwise the coastline store
// provisions itself from the Natural Earth shapefile.
type CoastlineConfig struct {
	GeoJSON  string `yaml:"geojson"`
	Database string `yaml:"database"`
}

// APIConfig points at the marine weather API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// MarkerConfig controls marker placement policy. Coastal spots often
// project onto a land cell; AllowOnLand keeps them visible (styled
// distinctly) instead of dropping them.
type MarkerConfig struct {
	AllowOnLand bool `yaml:"allow_on_land"`
}

// StopConfig is one color stop as written in YAML.
type StopConfig struct {
	Value float64 `yaml:"value"`
	Color string  `yaml:"color"`
}

// SpotConfig is one surf spot as written in YAML.
type SpotConfig struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:       GridConfig{Rows: 40, Cols: 60},
		Classifier: ClassifierConfig{ProbeEpsilon: 0.01, ProbeQuorum: 3},
		Coastline:  CoastlineConfig{Database: "data/surfcast.db"},
		API:        APIConfig{BaseURL: "https://marine-api.open-meteo.com"},
		Markers:    MarkerConfig{AllowOnLand: true},
		ColorStops: []StopConfig{
			{Value: 0.0, Color: "#1e3a8a"},
			{Value: 0.5, Color: "#2563eb"},
			{Value: 1.0, Color: "#22c55e"},
			{Value: 1.5, Color: "#eab308"},
			{Value: 2.0, Color: "#f97316"},
			{Value: 3.0, Color: "#dc2626"},
		},
		Spots: []SpotConfig{
			{Name: "Domburg", Lat: 51.565, Lon: 3.493},
			{Name: "Ouddorp", Lat: 51.810, Lon: 3.870},
			{Name: "Hoek van Holland", Lat: 51.977, Lon: 4.120},
			{Name: "Scheveningen", Lat: 52.108, Lon: 4.257},
			{Name: "Noordwijk", Lat: 52.242, Lon: 4.430},
			{Name: "Zandvoort", Lat: 52.375, Lon: 4.527},
			{Name: "Wijk aan Zee", Lat: 52.495, Lon: 4.585},
			{Name: "Petten", Lat: 52.770, Lon: 4.655},
			{Name: "Texel Paal 17", Lat: 53.078, Lon: 4.733},
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged. Structural problems fail fast here rather than
// surfacing as wrong colors or an empty grid later.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the structural invariants.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Classifier.ProbeEpsilon <= 0 {
		return fmt.Errorf("probe epsilon must be positive, got %g", c.Classifier.ProbeEpsilon)
	}
	if c.Classifier.ProbeQuorum < 0 || c.Classifier.ProbeQuorum > 4 {
		return fmt.Errorf("probe quorum must be within [0, 4], got %d", c.Classifier.ProbeQuorum)
	}
	if len(c.Spots) == 0 {
		return fmt.Errorf("at least one spot is required")
	}
	if _, err := c.Scale(); err != nil {
		return err
	}
	return nil
}

// Scale builds the color scale from the configured stops.
func (c Config) Scale() (*colorscale.Scale, error) {
	pairs := make([]struct {
		Value float64
		Hex   string
	}, 0, len(c.ColorStops))
	for _, s := range c.ColorStops {
		pairs = append(pairs, struct {
			Value float64
			Hex   string
		}{s.Value, s.Color})
	}
	return colorscale.NewFromHex(pairs)
}

// SpotList converts the configured spots to domain models.
func (c Config) SpotList() []models.Spot {
	spots := make([]models.Spot, 0, len(c.Spots))
	for _, s := range c.Spots {
		spots = append(spots, models.Spot{Name: s.Name, Latitude: s.Lat, Longitude: s.Lon})
	}
	return spots
}

// ClassifierSettings converts the tuning section to a geo.Classifier.
func (c Config) ClassifierSettings() geo.Classifier {
	return geo.Classifier{Epsilon: c.Classifier.ProbeEpsilon, Quorum: c.Classifier.ProbeQuorum}
}
