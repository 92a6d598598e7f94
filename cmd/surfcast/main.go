package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JellevanE/surf-vibe-code/internal/config"
	"github.com/JellevanE/surf-vibe-code/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults cover the Dutch coast)")
	geojsonPath := flag.String("coastline", "", "Path to a GeoJSON coastline file (skips the shapefile download)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *geojsonPath != "" {
		cfg.Coastline.GeoJSON = *geojsonPath
	}

	model, err := ui.NewModel(cfg)
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
