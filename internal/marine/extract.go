package marine

import (
	"math"
	"time"

	"github.com/JellevanE/surf-vibe-code/internal/models"
)

// SelectCurrent returns the index of the first sample whose timestamp
// is strictly after now, or 0 if none exists. An empty series also
// yields 0 so callers can index defensively without a range check of
// their own.
func SelectCurrent(times []time.Time, now time.Time) int {
	for i, t := range times {
		if t.After(now) {
			return i
		}
	}
	return 0
}

// CurrentObservation extracts the wave state at the current sample
// index. Missing or NaN height/period entries default to 0; a missing
// direction becomes nil so direction markers are skipped rather than
// drawn pointing north.
func CurrentObservation(spot models.Spot, series *models.WaveSeries, now time.Time) models.Observation {
	obs := models.Observation{
		Name:      spot.Name,
		Latitude:  spot.Latitude,
		Longitude: spot.Longitude,
	}
	if series == nil || len(series.Times) == 0 {
		return obs
	}

	i := SelectCurrent(series.Times, now)
	obs.Height = zeroIfInvalid(at(series.Heights, i))
	obs.Period = zeroIfInvalid(at(series.Periods, i))

	if dir := at(series.Directions, i); !math.IsNaN(dir) && !math.IsInf(dir, 0) {
		bearing := math.Mod(dir, 360)
		if bearing < 0 {
			bearing += 360
		}
		obs.Direction = &bearing
	}
	return obs
}

func at(vals []float64, i int) float64 {
	if i >= len(vals) {
		return math.NaN()
	}
	return vals[i]
}

func zeroIfInvalid(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
