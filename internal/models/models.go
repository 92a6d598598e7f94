package models

import "time"

// Spot is a fixed coastal observation location
type Spot struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// WaveSeries holds the hourly wave forecast arrays returned by the
// marine API for a single location. The four slices are index-aligned;
// entries may be NaN when the upstream feed has a gap.
type WaveSeries struct {
	Times      []time.Time
	Heights    []float64 // meters
	Periods    []float64 // seconds
	Directions []float64 // degrees, 0-360 compass bearing
}

// Observation is the current wave state at one spot, extracted from a
// WaveSeries. Direction is nil when the feed carried no usable bearing.
type Observation struct {
	Name      string
	Latitude  float64
	Longitude float64
	Height    float64 // meters
	Period    float64 // seconds
	Direction *float64
}
