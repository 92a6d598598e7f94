package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Each grid cell renders as two characters so cells are roughly square
// in a terminal font.
const (
	seaCell  = "██"
	landCell = "▒▒"
)

// renderHeatmap paints the classified grid with the interpolated wave
// field and overlays the spot markers.
func (m Model) renderHeatmap() string {
	if m.grid == nil || m.field == nil {
		return mutedStyle.Render("No grid data")
	}

	markerAt := make(map[[2]int]marker, len(m.markers))
	for _, mk := range m.markers {
		markerAt[[2]int{mk.placement.Row, mk.placement.Col}] = mk
	}

	var b strings.Builder
	for row := 0; row < m.grid.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < m.grid.Cols(); col++ {
			if mk, ok := markerAt[[2]int{row, col}]; ok {
				b.WriteString(m.renderMarkerCell(mk))
				continue
			}
			b.WriteString(m.renderCell(row, col))
		}
	}
	return b.String()
}

func (m Model) renderCell(row, col int) string {
	v := m.field.At(row, col)
	if math.IsNaN(v) {
		// Land (or out of range, which cannot happen inside the loop)
		return landStyle.Render(landCell)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.scale.Hex(v))).Render(seaCell)
}

func (m Model) renderMarkerCell(mk marker) string {
	glyph := bearingArrow(mk.obs.Direction) + " "
	if mk.placement.OnLand {
		return markerOnLandStyle.Render(glyph)
	}
	return markerStyle.Render(glyph)
}

// bearingArrow maps a compass bearing to an 8-way arrow showing where
// the waves travel toward (the API reports the direction they come
// from). A missing bearing renders a plain dot marker.
func bearingArrow(from *float64) string {
	if from == nil {
		return "●"
	}

	// Flip from "coming from" to "heading toward"
	toward := math.Mod(*from+180, 360)

	arrows := []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}
	idx := int(math.Floor(toward/45+0.5)) % 8
	return arrows[idx]
}
