// Package coastline stores the land boundary geometry in a SQLite
// database, provisioned once from a Natural Earth shapefile.
package coastline

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/JellevanE/surf-vibe-code/internal/database"
	"github.com/JellevanE/surf-vibe-code/internal/geo"
	_ "modernc.org/sqlite"
)

var (
	db      *sql.DB
	once    sync.Once
	initErr error
)

// GetDB returns the singleton database connection, provisioning the
// coastline table on first use.
func GetDB(dbPath string) (*sql.DB, error) {
	once.Do(func() {
		initErr = ProvisionDatabase(dbPath, nil)
		if initErr != nil {
			return
		}
		db, initErr = database.Open(dbPath)
	})
	return db, initErr
}

// LoadPolygon reads the stored coastline rings back into a land
// polygon.
func LoadPolygon(dbPath string) (geo.Polygon, error) {
	db, err := GetDB(dbPath)
	if err != nil {
		return geo.Polygon{}, fmt.Errorf("opening database: %w", err)
	}
	return loadPolygonFromDB(db)
}

// loadPolygonFromDB loads rings using the provided connection.
func loadPolygonFromDB(db *sql.DB) (geo.Polygon, error) {
	rows, err := db.Query("SELECT geometry FROM coastline_rings ORDER BY id")
	if err != nil {
		return geo.Polygon{}, fmt.Errorf("querying coastline rings: %w", err)
	}
	defer rows.Close()

	var poly geo.Polygon
	for rows.Next() {
		var geometryJSON string
		if err := rows.Scan(&geometryJSON); err != nil {
			continue
		}

		var coords [][]float64
		if err := json.Unmarshal([]byte(geometryJSON), &coords); err != nil {
			return geo.Polygon{}, fmt.Errorf("decoding ring geometry: %w", err)
		}

		ring := make(geo.Ring, 0, len(coords))
		for _, c := range coords {
			if len(c) < 2 {
				continue
			}
			ring = append(ring, geo.Point{Lon: c[0], Lat: c[1]})
		}
		if len(ring) >= 3 {
			poly.Rings = append(poly.Rings, ring)
		}
	}

	if len(poly.Rings) == 0 {
		return geo.Polygon{}, fmt.Errorf("coastline table contains no rings")
	}
	return poly, nil
}
