package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JellevanE/surf-vibe-code/internal/coastline"
	"github.com/JellevanE/surf-vibe-code/internal/colorscale"
	"github.com/JellevanE/surf-vibe-code/internal/config"
	"github.com/JellevanE/surf-vibe-code/internal/geo"
	"github.com/JellevanE/surf-vibe-code/internal/grid"
	"github.com/JellevanE/surf-vibe-code/internal/interp"
	"github.com/JellevanE/surf-vibe-code/internal/marine"
	"github.com/JellevanE/surf-vibe-code/internal/models"
	"github.com/JellevanE/surf-vibe-code/internal/projection"
)

// AppState represents the current state of the application
type AppState int

const (
	StateProvisioning AppState = iota // Initial coastline download/build
	StateBuilding                     // Loading coastline, fitting grid
	StateLoading                      // Fetching wave observations
	StateDisplay                      // Render heatmap
	StateError                        // Error state
)

// marker is an observation placed on the grid
type marker struct {
	obs       *models.Observation
	placement grid.Placement
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	cfg    config.Config
	scale  *colorscale.Scale
	client *marine.Client

	// Static geography, built once
	poly geo.Polygon
	proj *projection.Projection
	grid *grid.Grid

	// Per-batch data
	batch     []*models.Observation
	field     *interp.Field
	markers   []marker
	fetchedAt time.Time

	// Provisioning
	spinner           spinner.Model
	provisionStatus   string
	provisionChannels *provisioningStartedMsg
}

// NewModel creates a new application model. The config must already be
// validated; the scale construction here can only fail on a config
// that skipped Load.
func NewModel(cfg config.Config) (Model, error) {
	scale, err := cfg.Scale()
	if err != nil {
		return Model{}, fmt.Errorf("building color scale: %w", err)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:   StateBuilding,
		cfg:     cfg,
		scale:   scale,
		client:  marine.NewClient(cfg.API.BaseURL),
		spinner: s,
	}, nil
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.cfg.Coastline.GeoJSON == "" {
		needed, err := coastline.NeedsProvisioning(m.cfg.Coastline.Database)
		if err == nil && needed {
			return tea.Batch(m.spinner.Tick, initiateProvisioning(m.cfg.Coastline.Database))
		}
	}
	return tea.Batch(m.spinner.Tick, buildGrid(m.cfg))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case provisioningStartedMsg:
		m.state = StateProvisioning
		m.provisionStatus = "Starting coastline provisioning..."
		m.provisionChannels = &msg
		return m, tea.Batch(
			waitForProvisionStatus(msg.progressChan),
			waitForProvisionResult(msg.resultChan),
		)

	case provisionStatusMsg:
		m.provisionStatus = string(msg)
		if m.provisionChannels != nil {
			return m, waitForProvisionStatus(m.provisionChannels.progressChan)
		}
		return m, nil

	case provisionResultMsg:
		m.provisionChannels = nil
		if msg.err != nil {
			m.err = fmt.Errorf("provisioning failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.state = StateBuilding
		return m, buildGrid(m.cfg)

	case gridBuiltMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("building grid failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.poly = msg.poly
		m.proj = msg.proj
		m.grid = msg.grid
		m.state = StateLoading
		return m, fetchObservations(m.client, m.cfg.SpotList())

	case observationsMsg:
		m.batch = msg.batch
		m.fetchedAt = msg.fetchedAt
		m.field = interp.BuildField(m.grid, m.proj, msg.batch)
		m.markers = m.placeMarkers(msg.batch)
		m.state = StateDisplay
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			if m.state == StateDisplay {
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick, fetchObservations(m.client, m.cfg.SpotList()))
			}
		}

		if m.state == StateError {
			// Any other key retries from the grid stage
			m.err = nil
			m.state = StateBuilding
			return m, tea.Batch(m.spinner.Tick, buildGrid(m.cfg))
		}
		return m, nil
	}

	switch m.state {
	case StateProvisioning, StateBuilding, StateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// placeMarkers maps the batch onto grid cells, dropping out-of-bounds
// spots and, when configured, land placements.
func (m Model) placeMarkers(batch []*models.Observation) []marker {
	markers := make([]marker, 0, len(batch))
	for _, obs := range batch {
		if obs == nil {
			continue
		}
		p, ok := grid.Place(geo.Point{Lon: obs.Longitude, Lat: obs.Latitude}, m.proj, m.grid)
		if !ok {
			continue
		}
		if p.OnLand && !m.cfg.Markers.AllowOnLand {
			continue
		}
		markers = append(markers, marker{obs: obs, placement: p})
	}
	return markers
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateProvisioning:
		return m.viewProvisioning()
	case StateBuilding:
		return m.viewSpinner("Building coastline grid...")
	case StateLoading:
		return m.viewSpinner("Fetching wave observations...")
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewProvisioning renders the one-time setup screen
func (m Model) viewProvisioning() string {
	title := titleStyle.Render("🌊 Surfcast Setup")

	sp := m.spinner.View()
	status := mutedStyle.Render(m.provisionStatus)

	info := helpStyle.Render("One-time setup: downloading coastline data...")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", sp, status),
		"",
		info,
	)
}

// viewSpinner renders an interim state
func (m Model) viewSpinner(status string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		titleStyle.Render("🌊 Surfcast"),
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render(status)),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to retry • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewDisplay renders the heatmap with its legend and spot panes
func (m Model) viewDisplay() string {
	var sections []string

	header := titleStyle.Render("🌊 Surfcast — Dutch North Sea wave heights")
	sections = append(sections, header)

	fetched := mutedStyle.Render(fmt.Sprintf("Observations from %s", m.fetchedAt.Format("Jan 2 15:04 MST")))
	sections = append(sections, fetched, "")

	heatmap := paneStyle.Render(m.renderHeatmap())
	side := lipgloss.JoinVertical(
		lipgloss.Left,
		sectionHeaderStyle.Render("SPOTS"),
		m.renderSpots(),
		sectionHeaderStyle.Render("LEGEND"),
		m.renderLegend(),
	)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, heatmap, side))

	help := helpStyle.Render("R: Refresh • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
