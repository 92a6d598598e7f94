package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JellevanE/surf-vibe-code/internal/coastline"
	"github.com/JellevanE/surf-vibe-code/internal/config"
	"github.com/JellevanE/surf-vibe-code/internal/geo"
	"github.com/JellevanE/surf-vibe-code/internal/grid"
	"github.com/JellevanE/surf-vibe-code/internal/marine"
	"github.com/JellevanE/surf-vibe-code/internal/models"
	"github.com/JellevanE/surf-vibe-code/internal/projection"
)

// Message types for async operations

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// provisioningStartedMsg carries the channels of a running provision
type provisioningStartedMsg struct {
	progressChan chan string
	resultChan   chan error
}

// provisionStatusMsg is a progress update from provisioning
type provisionStatusMsg string

// provisionResultMsg is sent when provisioning finishes
type provisionResultMsg struct {
	err error
}

// gridBuiltMsg is sent when the coastline is loaded and classified
type gridBuiltMsg struct {
	poly geo.Polygon
	proj *projection.Projection
	grid *grid.Grid
	err  error
}

// observationsMsg is sent when a fetch batch completes. Entries are
// nil for spots whose fetch failed.
type observationsMsg struct {
	batch     []*models.Observation
	fetchedAt time.Time
}

// initiateProvisioning starts coastline provisioning in the background
func initiateProvisioning(dbPath string) tea.Cmd {
	return func() tea.Msg {
		progressChan := make(chan string, 16)
		resultChan := make(chan error, 1)

		go func() {
			err := coastline.ProvisionDatabase(dbPath, progressChan)
			close(progressChan)
			resultChan <- err
		}()

		return provisioningStartedMsg{progressChan: progressChan, resultChan: resultChan}
	}
}

// waitForProvisionStatus relays the next progress update
func waitForProvisionStatus(ch chan string) tea.Cmd {
	return func() tea.Msg {
		if msg, ok := <-ch; ok {
			return provisionStatusMsg(msg)
		}
		return nil
	}
}

// waitForProvisionResult relays the final provisioning result
func waitForProvisionResult(ch chan error) tea.Cmd {
	return func() tea.Msg {
		return provisionResultMsg{err: <-ch}
	}
}

// buildGrid loads the coastline polygon, fits the projection and
// classifies the grid
func buildGrid(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		var (
			poly geo.Polygon
			err  error
		)
		if cfg.Coastline.GeoJSON != "" {
			poly, err = geo.LoadGeoJSON(cfg.Coastline.GeoJSON)
		} else {
			poly, err = coastline.LoadPolygon(cfg.Coastline.Database)
		}
		if err != nil {
			return gridBuiltMsg{err: err}
		}

		proj, err := projection.Fit(poly, cfg.Grid.Cols, cfg.Grid.Rows)
		if err != nil {
			return gridBuiltMsg{err: err}
		}

		g := grid.Build(poly, proj, cfg.ClassifierSettings())
		return gridBuiltMsg{poly: poly, proj: proj, grid: g}
	}
}

// fetchObservations fetches the full spot batch
func fetchObservations(client *marine.Client, spots []models.Spot) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		now := time.Now().UTC()
		batch := marine.FetchAll(ctx, client, spots, now)
		return observationsMsg{batch: batch, fetchedAt: now}
	}
}
