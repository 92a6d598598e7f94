// Package interp computes the inverse-distance-weighted wave field
// over the sea cells of a grid.
package interp

import (
	"math"

	"github.com/JellevanE/surf-vibe-code/internal/geo"
	"github.com/JellevanE/surf-vibe-code/internal/grid"
	"github.com/JellevanE/surf-vibe-code/internal/models"
	"github.com/JellevanE/surf-vibe-code/internal/projection"
)

// epsilon softens the weight so a station exactly at the query point
// cannot force the weight to infinity, and guards division by zero.
const epsilon = 0.01

// Interpolate returns the inverse-distance-weighted average of the
// observation values at the query point. Distance is great-circle
// angular distance; weight is 1/(d²+ε). Observations with a
// non-finite value or location are skipped rather than counted as
// zero, so gaps do not bias the average. With no usable observations
// the result is 0 — an empty sea, not an error.
func Interpolate(query geo.Point, obs []models.Observation) float64 {
	var sumWeighted, sumWeights float64

	for _, o := range obs {
		if !usable(o) {
			continue
		}
		d := geo.AngularDistance(query, geo.Point{Lon: o.Longitude, Lat: o.Latitude})
		w := 1 / (d*d + epsilon)
		sumWeighted += o.Height * w
		sumWeights += w
	}

	if sumWeights == 0 {
		return 0
	}
	return sumWeighted / sumWeights
}

func usable(o models.Observation) bool {
	return !math.IsNaN(o.Height) && !math.IsInf(o.Height, 0) &&
		!math.IsNaN(o.Latitude) && !math.IsNaN(o.Longitude) &&
		!math.IsInf(o.Latitude, 0) && !math.IsInf(o.Longitude, 0)
}

// Field is the interpolated scalar per cell. Land cells hold NaN so a
// missing value cannot be confused with flat calm.
type Field struct {
	rows, cols int
	values     []float64
}

// BuildField interpolates every sea cell of the grid from the
// observations. Nil entries in the observation batch (failed fetches)
// are skipped. The field is rebuilt in full on every new batch.
func BuildField(g *grid.Grid, proj *projection.Projection, batch []*models.Observation) *Field {
	obs := make([]models.Observation, 0, len(batch))
	for _, o := range batch {
		if o != nil {
			obs = append(obs, *o)
		}
	}

	f := &Field{
		rows:   g.Rows(),
		cols:   g.Cols(),
		values: make([]float64, g.Rows()*g.Cols()),
	}

	for row := 0; row < f.rows; row++ {
		for col := 0; col < f.cols; col++ {
			i := row*f.cols + col
			if g.ClassAt(row, col) == geo.Land {
				f.values[i] = math.NaN()
				continue
			}
			f.values[i] = Interpolate(proj.CellCenter(row, col), obs)
		}
	}
	return f
}

// At returns the interpolated value for a cell. Land and out-of-range
// cells return NaN.
func (f *Field) At(row, col int) float64 {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return math.NaN()
	}
	return f.values[row*f.cols+col]
}
