// Package grid builds the static land/sea grid and places markers on
// it.
package grid

import (
	"math"

	"github.com/JellevanE/surf-vibe-code/internal/geo"
	"github.com/JellevanE/surf-vibe-code/internal/projection"
)

// Grid is an immutable land/sea classification of every cell. It is
// built once per polygon+projection pair; classifications never change
// afterwards.
type Grid struct {
	rows, cols int
	classes    []geo.Class
}

// Build classifies every cell center of the projection's grid against
// the land polygon. Cells are independent, so the grid may be built in
// any order; a single pass keeps it simple.
func Build(poly geo.Polygon, proj *projection.Projection, classifier geo.Classifier) *Grid {
	rows, cols := proj.Rows(), proj.Cols()
	g := &Grid{
		rows:    rows,
		cols:    cols,
		classes: make([]geo.Class, rows*cols),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := proj.CellCenter(row, col)
			g.classes[row*cols+col] = classifier.Classify(poly, center)
		}
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// ClassAt returns the classification of a cell. Out-of-range indices
// return Sea.
func (g *Grid) ClassAt(row, col int) geo.Class {
	if !g.InBounds(row, col) {
		return geo.Sea
	}
	return g.classes[row*g.cols+col]
}

// InBounds reports whether the cell indices fall inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// SeaCells returns the number of cells classified as sea.
func (g *Grid) SeaCells() int {
	n := 0
	for _, c := range g.classes {
		if c == geo.Sea {
			n++
		}
	}
	return n
}

// Placement is the grid cell a marker lands on. OnLand flags markers
// that fell on a land cell; coastal observation points often sit
// exactly on the coastline, so these are allowed but the renderer
// styles them differently.
type Placement struct {
	Row, Col int
	OnLand   bool
}

// Place maps a location to the cell containing it. The second return
// is false when the projected coordinate is NaN or falls outside the
// grid; the caller decides whether to skip or log.
func Place(pt geo.Point, proj *projection.Projection, g *Grid) (Placement, bool) {
	colF, rowF := proj.Project(pt.Lon, pt.Lat)
	if math.IsNaN(colF) || math.IsNaN(rowF) {
		return Placement{}, false
	}

	row := int(math.Floor(rowF))
	col := int(math.Floor(colF))
	if !g.InBounds(row, col) {
		return Placement{}, false
	}

	return Placement{
		Row:    row,
		Col:    col,
		OnLand: g.ClassAt(row, col) == geo.Land,
	}, true
}
