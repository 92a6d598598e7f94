package geo

import (
	"encoding/json"
	"fmt"
	"os"
)

// GeoJSON structures, following the standard layout. Only Polygon and
// MultiPolygon geometries are consumed; everything else is skipped.

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type     string   `json:"type"`
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadGeoJSON reads a GeoJSON file and collects all polygon rings into
// a single land Polygon.
func LoadGeoJSON(path string) (Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Polygon{}, fmt.Errorf("reading geojson: %w", err)
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON decodes a FeatureCollection, Feature or bare geometry
// into a Polygon.
func ParseGeoJSON(data []byte) (Polygon, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Polygon{}, fmt.Errorf("decoding geojson: %w", err)
	}

	var poly Polygon
	switch probe.Type {
	case "FeatureCollection":
		var fc featureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return Polygon{}, fmt.Errorf("decoding feature collection: %w", err)
		}
		for _, f := range fc.Features {
			if err := appendGeometry(&poly, f.Geometry); err != nil {
				return Polygon{}, err
			}
		}
	case "Feature":
		var f feature
		if err := json.Unmarshal(data, &f); err != nil {
			return Polygon{}, fmt.Errorf("decoding feature: %w", err)
		}
		if err := appendGeometry(&poly, f.Geometry); err != nil {
			return Polygon{}, err
		}
	case "Polygon", "MultiPolygon":
		var g geometry
		if err := json.Unmarshal(data, &g); err != nil {
			return Polygon{}, fmt.Errorf("decoding geometry: %w", err)
		}
		if err := appendGeometry(&poly, g); err != nil {
			return Polygon{}, err
		}
	default:
		return Polygon{}, fmt.Errorf("unsupported geojson type %q", probe.Type)
	}

	if len(poly.Rings) == 0 {
		return Polygon{}, fmt.Errorf("geojson contains no polygon rings")
	}
	return poly, nil
}

func appendGeometry(poly *Polygon, g geometry) error {
	switch g.Type {
	case "Polygon":
		var rings [][][2]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return fmt.Errorf("decoding polygon coordinates: %w", err)
		}
		appendRings(poly, rings)
	case "MultiPolygon":
		var polys [][][][2]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return fmt.Errorf("decoding multipolygon coordinates: %w", err)
		}
		for _, rings := range polys {
			appendRings(poly, rings)
		}
	default:
		// Point, LineString and friends carry no land area.
	}
	return nil
}

func appendRings(poly *Polygon, rings [][][2]float64) {
	for _, coords := range rings {
		ring := make(Ring, 0, len(coords))
		for _, c := range coords {
			ring = append(ring, Point{Lon: c[0], Lat: c[1]})
		}
		if len(ring) >= 3 {
			poly.Rings = append(poly.Rings, ring)
		}
	}
}
