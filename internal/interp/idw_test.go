package interp

import (
	"math"
	"testing"

	"github.com/JellevanE/surf-vibe-code/internal/geo"
	"github.com/JellevanE/surf-vibe-code/internal/grid"
	"github.com/JellevanE/surf-vibe-code/internal/models"
	"github.com/JellevanE/surf-vibe-code/internal/projection"
)

func obs(name string, lon, lat, height float64) models.Observation {
	return models.Observation{Name: name, Longitude: lon, Latitude: lat, Height: height}
}

func TestInterpolateEmpty(t *testing.T) {
	if got := Interpolate(geo.Point{Lon: 4.0, Lat: 52.0}, nil); got != 0 {
		t.Errorf("Interpolate with no observations = %v, want 0", got)
	}
	if got := Interpolate(geo.Point{Lon: 4.0, Lat: 52.0}, []models.Observation{}); got != 0 {
		t.Errorf("Interpolate with empty slice = %v, want 0", got)
	}
}

func TestInterpolateSingleColocated(t *testing.T) {
	query := geo.Point{Lon: 4.257, Lat: 52.108}
	got := Interpolate(query, []models.Observation{obs("scheveningen", 4.257, 52.108, 1.4)})
	if math.Abs(got-1.4) > 1e-9 {
		t.Errorf("Interpolate at co-located station = %v, want 1.4", got)
	}
}

func TestInterpolateWeightedAverageBounds(t *testing.T) {
	query := geo.Point{Lon: 4.4, Lat: 52.3}
	set := []models.Observation{
		obs("a", 4.257, 52.108, 0.5),
		obs("b", 4.555, 52.460, 1.0),
		obs("c", 4.733, 53.078, 1.5),
	}

	got := Interpolate(query, set)
	if got < 0.5 || got > 1.5 {
		t.Errorf("Interpolate = %v, want within [0.5, 1.5]", got)
	}
}

func TestInterpolateNearestDominates(t *testing.T) {
	// Query exactly at the middle observation: result should be closer
	// to its value than to either neighbor's.
	set := []models.Observation{
		obs("south", 3.493, 51.565, 0.5),
		obs("middle", 4.555, 52.460, 1.0),
		obs("north", 4.733, 53.078, 1.5),
	}

	got := Interpolate(geo.Point{Lon: 4.555, Lat: 52.460}, set)
	if math.Abs(got-1.0) >= math.Abs(got-0.5) || math.Abs(got-1.0) >= math.Abs(got-1.5) {
		t.Errorf("Interpolate at middle station = %v, want closest to 1.0", got)
	}
}

func TestInterpolateSkipsInvalid(t *testing.T) {
	query := geo.Point{Lon: 4.4, Lat: 52.3}
	set := []models.Observation{
		obs("good", 4.257, 52.108, 2.0),
		obs("nan value", 4.555, 52.460, math.NaN()),
		obs("inf value", 4.733, 53.078, math.Inf(1)),
		obs("nan location", math.NaN(), 52.0, 1.0),
	}

	got := Interpolate(query, set)
	if math.Abs(got-2.0) > 1e-6 {
		t.Errorf("Interpolate = %v, want 2.0 (invalid entries skipped, not zeroed)", got)
	}
}

func TestInterpolateAllInvalid(t *testing.T) {
	set := []models.Observation{
		obs("a", 4.257, 52.108, math.NaN()),
		obs("b", math.Inf(1), 52.0, 1.0),
	}
	if got := Interpolate(geo.Point{Lon: 4.4, Lat: 52.3}, set); got != 0 {
		t.Errorf("Interpolate with only invalid observations = %v, want 0", got)
	}
}

func TestBuildField(t *testing.T) {
	extent := geo.Polygon{Rings: []geo.Ring{{
		{Lon: 2, Lat: 50}, {Lon: 6, Lat: 50}, {Lon: 6, Lat: 54}, {Lon: 2, Lat: 54}, {Lon: 2, Lat: 50},
	}}}
	land := geo.Polygon{Rings: []geo.Ring{{
		{Lon: 4, Lat: 50}, {Lon: 6, Lat: 50}, {Lon: 6, Lat: 54}, {Lon: 4, Lat: 54}, {Lon: 4, Lat: 50},
	}}}

	proj, err := projection.Fit(extent, 12, 12)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	g := grid.Build(land, proj, geo.DefaultClassifier())

	a := obs("a", 3.0, 51.0, 0.8)
	b := obs("b", 3.0, 53.0, 1.6)
	f := BuildField(g, proj, []*models.Observation{&a, nil, &b})

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := f.At(row, col)
			if g.ClassAt(row, col) == geo.Land {
				if !math.IsNaN(v) {
					t.Fatalf("land cell (%d,%d) = %v, want NaN", row, col, v)
				}
				continue
			}
			if math.IsNaN(v) || v < 0.8 || v > 1.6 {
				t.Fatalf("sea cell (%d,%d) = %v, want within [0.8, 1.6]", row, col, v)
			}
		}
	}
}

func TestBuildFieldNoObservations(t *testing.T) {
	extent := geo.Polygon{Rings: []geo.Ring{{
		{Lon: 2, Lat: 50}, {Lon: 6, Lat: 50}, {Lon: 6, Lat: 54}, {Lon: 2, Lat: 54}, {Lon: 2, Lat: 50},
	}}}
	proj, err := projection.Fit(extent, 8, 8)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	g := grid.Build(geo.Polygon{}, proj, geo.DefaultClassifier())

	f := BuildField(g, proj, nil)
	if v := f.At(4, 4); v != 0 {
		t.Errorf("field with no observations = %v, want 0", v)
	}
}

func TestFieldAtOutOfRange(t *testing.T) {
	f := &Field{rows: 2, cols: 2, values: []float64{1, 2, 3, 4}}
	if !math.IsNaN(f.At(-1, 0)) || !math.IsNaN(f.At(0, 2)) {
		t.Error("out-of-range lookup should return NaN")
	}
}
