package geo

import "math"

// Class is a land/sea cell classification.
type Class int

const (
	Sea Class = iota
	Land
)

func (c Class) String() string {
	if c == Land {
		return "land"
	}
	return "sea"
}

// Classifier decides whether a point counts as land. Beyond plain
// containment it samples four offshore probe points around the center
// and requires a quorum of them to also be inside, so narrow coastal
// sea cells whose center clips a jagged coastline still classify as
// sea. Epsilon and quorum are tuned for the Dutch coastline and are
// deliberately configurable.
type Classifier struct {
	Epsilon float64 // probe displacement in degrees
	Quorum  int     // probes (of 4) that must be inside for land
}

// DefaultClassifier returns the classifier tuning used when no
// configuration overrides it.
func DefaultClassifier() Classifier {
	return Classifier{Epsilon: 0.01, Quorum: 3}
}

// Classify returns Land only when the point itself is inside the
// polygon and at least Quorum of the four cardinal probes are too.
// Invalid coordinates classify as sea: the renderer degrades to an
// uncolored cell rather than blocking a marker.
func (c Classifier) Classify(p Polygon, pt Point) Class {
	if math.IsNaN(pt.Lon) || math.IsNaN(pt.Lat) ||
		math.IsInf(pt.Lon, 0) || math.IsInf(pt.Lat, 0) {
		return Sea
	}

	if !p.Contains(pt) {
		return Sea
	}

	probes := [4]Point{
		{Lon: pt.Lon, Lat: pt.Lat + c.Epsilon},
		{Lon: pt.Lon, Lat: pt.Lat - c.Epsilon},
		{Lon: pt.Lon + c.Epsilon, Lat: pt.Lat},
		{Lon: pt.Lon - c.Epsilon, Lat: pt.Lat},
	}

	inside := 0
	for _, probe := range probes {
		if p.Contains(probe) {
			inside++
		}
	}

	if inside >= c.Quorum {
		return Land
	}
	return Sea
}
