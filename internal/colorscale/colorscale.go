// Package colorscale maps wave heights to colors via piecewise linear
// interpolation over a configurable stop table.
package colorscale

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop anchors one point of the gradient.
type Stop struct {
	Value float64
	Color colorful.Color
}

// Scale is a validated, immutable color-stop table.
type Scale struct {
	stops []Stop
}

// New validates the stop table: at least two entries, strictly
// ascending values. A malformed table is a configuration error and the
// scale refuses to construct rather than silently producing wrong
// colors.
func New(stops []Stop) (*Scale, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("color scale needs at least 2 stops, got %d", len(stops))
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Value <= stops[i-1].Value {
			return nil, fmt.Errorf("color stops must be strictly ascending: stop %d (%.3f) <= stop %d (%.3f)",
				i, stops[i].Value, i-1, stops[i-1].Value)
		}
	}

	s := &Scale{stops: make([]Stop, len(stops))}
	copy(s.stops, stops)
	return s, nil
}

// NewFromHex builds a scale from (value, "#rrggbb") pairs, as they
// appear in configuration.
func NewFromHex(pairs []struct {
	Value float64
	Hex   string
}) (*Scale, error) {
	stops := make([]Stop, 0, len(pairs))
	for _, p := range pairs {
		c, err := colorful.Hex(p.Hex)
		if err != nil {
			return nil, fmt.Errorf("parsing stop color %q: %w", p.Hex, err)
		}
		stops = append(stops, Stop{Value: p.Value, Color: c})
	}
	return New(stops)
}

// ColorFor clamps the value to the stop domain and blends linearly
// between the bracketing stops.
func (s *Scale) ColorFor(value float64) colorful.Color {
	first, last := s.stops[0], s.stops[len(s.stops)-1]
	if !(value > first.Value) { // also catches NaN
		return first.Color
	}
	if value >= last.Value {
		return last.Color
	}

	i := sort.Search(len(s.stops), func(i int) bool {
		return s.stops[i].Value >= value
	})
	prev, next := s.stops[i-1], s.stops[i]

	t := (value - prev.Value) / (next.Value - prev.Value)
	return prev.Color.BlendRgb(next.Color, t)
}

// Hex returns the blended color as "#rrggbb", ready for a lipgloss
// style.
func (s *Scale) Hex(value float64) string {
	return s.ColorFor(value).Hex()
}

// Domain returns the clamp bounds of the scale.
func (s *Scale) Domain() (min, max float64) {
	return s.stops[0].Value, s.stops[len(s.stops)-1].Value
}

// Stops returns a copy of the stop table, for legend rendering.
func (s *Scale) Stops() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}
