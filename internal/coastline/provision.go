package coastline

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"
	_ "modernc.org/sqlite"
)

const (
	// Natural Earth 10m countries shapefile (public domain)
	countriesURL  = "https://naciscdn.org/naturalearth/10m/cultural/ne_10m_admin_0_countries.zip"
	shapefileBase = "ne_10m_admin_0_countries"
	countryName   = "Netherlands"
)

// Only rings touching the Dutch North Sea coast extent are kept; the
// Caribbean municipalities in the same country record are irrelevant
// to the grid.
const (
	extentMinLon = 2.0
	extentMaxLon = 8.0
	extentMinLat = 50.0
	extentMaxLat = 54.5
)

// NeedsProvisioning reports whether the coastline table is missing.
func NeedsProvisioning(dbPath string) (bool, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return true, nil
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return false, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='coastline_rings'").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking for coastline_rings table: %w", err)
	}
	return count == 0, nil
}

// ProvisionDatabase creates the coastline_rings table if missing,
// downloading and converting the Natural Earth shapefile. Progress
// messages go to the optional channel for the UI.
func ProvisionDatabase(dbPath string, progress chan<- string) error {
	needed, err := NeedsProvisioning(dbPath)
	if err != nil {
		return err
	}
	if !needed {
		return nil
	}

	report(progress, "Coastline data not found, provisioning...")
	log.Println("Coastline table not found, provisioning...")

	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	zipPath := filepath.Join(dataDir, shapefileBase+".zip")
	report(progress, "Downloading Natural Earth coastline shapefile...")
	log.Printf("Downloading countries shapefile from %s...", countriesURL)
	if err := downloadFile(zipPath, countriesURL); err != nil {
		return fmt.Errorf("downloading shapefile: %w", err)
	}
	defer os.Remove(zipPath)

	report(progress, "Extracting shapefile...")
	if err := unzipFile(zipPath, dataDir); err != nil {
		return fmt.Errorf("extracting shapefile: %w", err)
	}

	report(progress, "Building coastline database...")
	shapefilePath := filepath.Join(dataDir, shapefileBase+".shp")
	if err := buildDatabase(shapefilePath, dbPath); err != nil {
		return fmt.Errorf("building database: %w", err)
	}

	cleanupShapefiles(dataDir, shapefileBase)

	report(progress, "Coastline database ready")
	log.Printf("Successfully provisioned coastline database at %s", dbPath)
	return nil
}

func report(progress chan<- string, msg string) {
	if progress != nil {
		progress <- msg
	}
}

// downloadFile downloads a file from a URL to a local path.
func downloadFile(filepath string, url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// unzipFile extracts a zip file to a destination directory.
func unzipFile(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		fpath := filepath.Join(dest, f.Name)

		// Guard against ZipSlip
		if !filepath.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path: %s", fpath)
		}

		if f.FileInfo().IsDir() {
			os.MkdirAll(fpath, os.ModePerm)
			continue
		}

		if err = os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
			return err
		}

		outFile, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			outFile.Close()
			return err
		}

		_, err = io.Copy(outFile, rc)
		outFile.Close()
		rc.Close()

		if err != nil {
			return err
		}
	}
	return nil
}

// buildDatabase extracts the Dutch coastline rings from the countries
// shapefile into the coastline_rings table.
func buildDatabase(shapefilePath, dbPath string) error {
	shape, err := shp.Open(shapefilePath)
	if err != nil {
		return fmt.Errorf("opening shapefile: %w", err)
	}
	defer shape.Close()

	// Locate the country name attribute; Natural Earth calls it ADMIN.
	nameField := -1
	for i, f := range shape.Fields() {
		if strings.EqualFold(f.String(), "ADMIN") {
			nameField = i
			break
		}
	}
	if nameField < 0 {
		return fmt.Errorf("shapefile has no ADMIN attribute")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE coastline_rings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			country TEXT NOT NULL,
			geometry TEXT NOT NULL,
			bbox_min_lat REAL NOT NULL,
			bbox_max_lat REAL NOT NULL,
			bbox_min_lon REAL NOT NULL,
			bbox_max_lon REAL NOT NULL
		);

		CREATE INDEX idx_rings_bbox ON coastline_rings(
			bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon
		);
	`)
	if err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	count := 0
	for shape.Next() {
		n, p := shape.Shape()

		if shape.ReadAttribute(n, nameField) != countryName {
			continue
		}

		polygon, ok := p.(*shp.Polygon)
		if !ok {
			continue
		}

		for partIdx := 0; partIdx < len(polygon.Parts); partIdx++ {
			startIdx := int(polygon.Parts[partIdx])
			endIdx := len(polygon.Points)
			if partIdx+1 < len(polygon.Parts) {
				endIdx = int(polygon.Parts[partIdx+1])
			}

			coords := make([][]float64, 0, endIdx-startIdx)
			minLon, maxLon := 180.0, -180.0
			minLat, maxLat := 90.0, -90.0
			for i := startIdx; i < endIdx; i++ {
				point := polygon.Points[i]
				coords = append(coords, []float64{point.X, point.Y})
				if point.X < minLon {
					minLon = point.X
				}
				if point.X > maxLon {
					maxLon = point.X
				}
				if point.Y < minLat {
					minLat = point.Y
				}
				if point.Y > maxLat {
					maxLat = point.Y
				}
			}

			if len(coords) < 3 {
				continue
			}
			// Skip parts entirely outside the North Sea extent
			if maxLon < extentMinLon || minLon > extentMaxLon ||
				maxLat < extentMinLat || minLat > extentMaxLat {
				continue
			}

			geometryJSON, err := json.Marshal(coords)
			if err != nil {
				log.Printf("Error marshaling ring geometry: %v", err)
				continue
			}

			_, err = db.Exec(`
				INSERT INTO coastline_rings (
					country, geometry,
					bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon
				) VALUES (?, ?, ?, ?, ?, ?)
			`, countryName, string(geometryJSON),
				minLat, maxLat, minLon, maxLon)
			if err != nil {
				log.Printf("Error inserting ring: %v", err)
				continue
			}
			count++
		}
	}

	if count == 0 {
		return fmt.Errorf("no coastline rings found for %s in shapefile", countryName)
	}

	log.Printf("Successfully created database with %d coastline rings", count)
	return nil
}

// cleanupShapefiles removes the extracted shapefile components.
func cleanupShapefiles(dir, base string) {
	extensions := []string{".shp", ".shx", ".dbf", ".prj", ".cpg", ".shp.xml", ".VERSION.txt", ".README.html"}
	for _, ext := range extensions {
		path := filepath.Join(dir, base+ext)
		os.Remove(path) // Ignore errors
	}
}
