package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLegend lists the color stops with their wave heights.
func (m Model) renderLegend() string {
	var lines []string
	for _, stop := range m.scale.Stops() {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(stop.Color.Hex())).
			Render("██")
		lines = append(lines, fmt.Sprintf("%s %s", swatch, valueStyle.Render(fmt.Sprintf("%.1f m", stop.Value))))
	}
	lines = append(lines, fmt.Sprintf("%s %s", landStyle.Render(landCell), mutedStyle.Render("land")))
	return strings.Join(lines, "\n")
}
