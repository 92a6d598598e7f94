// Package projection maps geographic coordinates onto grid
// coordinates and back.
package projection

import (
	"fmt"
	"math"

	"github.com/JellevanE/surf-vibe-code/internal/geo"
)

// Projection is a spherical Mercator mapping fit so a bounding extent
// lands inside a cols x rows grid with a uniform scale, centered.
// Column grows east, row grows south (row 0 is the northern edge).
// Immutable after Fit.
type Projection struct {
	cols, rows       int
	scale            float64
	centerX, centerY float64 // Mercator coordinates of the extent center
}

// Fit constructs a projection that maps the bounding extent of the
// polygon onto [0, cols] x [0, rows]. The scale is uniform in both
// axes, clamped to the smaller axis requirement so the whole extent
// fits, and the extent is centered in the grid.
func Fit(p geo.Polygon, cols, rows int) (*Projection, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", cols, rows)
	}

	b := p.Bounds()
	x0, y0 := mercator(b.MinLon, b.MinLat)
	x1, y1 := mercator(b.MaxLon, b.MaxLat)
	spanX := x1 - x0
	spanY := y1 - y0
	if spanX <= 0 || spanY <= 0 {
		return nil, fmt.Errorf("degenerate extent %+v", b)
	}

	scaleX := float64(cols) / spanX
	scaleY := float64(rows) / spanY
	scale := math.Min(scaleX, scaleY)

	return &Projection{
		cols:    cols,
		rows:    rows,
		scale:   scale,
		centerX: (x0 + x1) / 2,
		centerY: (y0 + y1) / 2,
	}, nil
}

// Project converts a geographic coordinate to fractional grid
// coordinates. Inputs outside the fitted extent project outside the
// [0, cols] x [0, rows] rectangle; callers do their own bounds checks.
func (p *Projection) Project(lon, lat float64) (col, row float64) {
	x, y := mercator(lon, lat)
	col = (x-p.centerX)*p.scale + float64(p.cols)/2
	row = (p.centerY-y)*p.scale + float64(p.rows)/2
	return col, row
}

// Invert is the exact mathematical inverse of Project.
func (p *Projection) Invert(col, row float64) (lon, lat float64) {
	x := (col-float64(p.cols)/2)/p.scale + p.centerX
	y := p.centerY - (row-float64(p.rows)/2)/p.scale
	lon = x * 180 / math.Pi
	lat = (2*math.Atan(math.Exp(y)) - math.Pi/2) * 180 / math.Pi
	return lon, lat
}

// CellCenter returns the geographic coordinate at the center of the
// given cell.
func (p *Projection) CellCenter(row, col int) geo.Point {
	lon, lat := p.Invert(float64(col)+0.5, float64(row)+0.5)
	return geo.Point{Lon: lon, Lat: lat}
}

// Cols returns the fitted grid width.
func (p *Projection) Cols() int { return p.cols }

// Rows returns the fitted grid height.
func (p *Projection) Rows() int { return p.rows }

func mercator(lon, lat float64) (x, y float64) {
	x = lon * math.Pi / 180
	y = math.Log(math.Tan(math.Pi/4 + lat*math.Pi/360))
	return x, y
}
