package ui

import (
	"fmt"
	"strings"
)

// renderSpots lists every configured spot with its current
// observation, or its failure status.
func (m Model) renderSpots() string {
	if len(m.batch) == 0 {
		return mutedStyle.Render("No observations")
	}

	placed := make(map[string]marker, len(m.markers))
	for _, mk := range m.markers {
		placed[mk.obs.Name] = mk
	}

	var lines []string
	for _, obs := range m.batch {
		if obs == nil {
			continue
		}

		line := fmt.Sprintf("%s %s",
			labelStyle.Render(fmt.Sprintf("%-17s", obs.Name)),
			valueStyle.Render(fmt.Sprintf("%.1f m @ %.0f s", obs.Height, obs.Period)))

		if obs.Direction != nil {
			line += mutedStyle.Render(fmt.Sprintf(" %s %.0f°", bearingArrow(obs.Direction), *obs.Direction))
		}

		if mk, ok := placed[obs.Name]; ok {
			if mk.placement.OnLand {
				line += markerOnLandStyle.Render(" coast")
			}
		} else {
			line += mutedStyle.Render(" off-grid")
		}

		lines = append(lines, line)
	}

	failed := 0
	for _, obs := range m.batch {
		if obs == nil {
			failed++
		}
	}
	if failed > 0 {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("%d spot(s) unavailable", failed)))
	} else {
		lines = append(lines, successStyle.Render("✓ all spots loaded"))
	}

	return strings.Join(lines, "\n")
}
