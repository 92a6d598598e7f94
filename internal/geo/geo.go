// Package geo provides the geometric primitives for the heatmap
// pipeline: polygon containment, great-circle distance and the
// land/sea classifier.
package geo

import "math"

// Point is a geographic coordinate in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Ring is a closed sequence of vertices. The closing vertex may be
// repeated or not; containment handles both.
type Ring []Point

// Polygon is a set of rings describing land area. Multiple rings model
// separate land masses (mainland plus islands); containment is the
// union of ring containment.
type Polygon struct {
	Rings []Ring
}

// BBox is a geographic bounding box.
type BBox struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Bounds returns the bounding box over all rings. Returns a zero box
// for an empty polygon.
func (p Polygon) Bounds() BBox {
	b := BBox{MinLon: math.Inf(1), MinLat: math.Inf(1), MaxLon: math.Inf(-1), MaxLat: math.Inf(-1)}
	empty := true
	for _, ring := range p.Rings {
		for _, v := range ring {
			empty = false
			b.MinLon = math.Min(b.MinLon, v.Lon)
			b.MaxLon = math.Max(b.MaxLon, v.Lon)
			b.MinLat = math.Min(b.MinLat, v.Lat)
			b.MaxLat = math.Max(b.MaxLat, v.Lat)
		}
	}
	if empty {
		return BBox{}
	}
	return b
}

// Contains reports whether the point lies inside any ring of the
// polygon, using the even-odd ray casting rule.
func (p Polygon) Contains(pt Point) bool {
	for _, ring := range p.Rings {
		if ring.contains(pt) {
			return true
		}
	}
	return false
}

func (r Ring) contains(pt Point) bool {
	if len(r) < 3 {
		return false
	}

	inside := false
	j := len(r) - 1
	for i := 0; i < len(r); i++ {
		if (r[i].Lat > pt.Lat) != (r[j].Lat > pt.Lat) &&
			pt.Lon < (r[j].Lon-r[i].Lon)*(pt.Lat-r[i].Lat)/
				(r[j].Lat-r[i].Lat)+r[i].Lon {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Distance calculates great-circle distance in kilometers using the
// Haversine formula.
func Distance(p1, p2 Point) float64 {
	const earthRadiusKm = 6371.0
	return earthRadiusKm * AngularDistance(p1, p2)
}

// AngularDistance calculates the great-circle central angle between
// two points, in radians. Symmetric and satisfies the triangle
// inequality, which the inverse-distance weighting relies on.
func AngularDistance(p1, p2 Point) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	deltaLat := (p2.Lat - p1.Lat) * math.Pi / 180
	deltaLon := (p2.Lon - p1.Lon) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
