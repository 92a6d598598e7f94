package coastline

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func ringTable(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE coastline_rings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			country TEXT NOT NULL,
			geometry TEXT NOT NULL,
			bbox_min_lat REAL NOT NULL,
			bbox_max_lat REAL NOT NULL,
			bbox_min_lon REAL NOT NULL,
			bbox_max_lon REAL NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	return db
}

func TestLoadPolygonFromDB(t *testing.T) {
	db := ringTable(t)

	_, err := db.Exec(`
		INSERT INTO coastline_rings (country, geometry, bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon) VALUES
		('Netherlands', '[[4.0,52.0],[5.0,52.0],[5.0,53.0],[4.0,53.0],[4.0,52.0]]', 52.0, 53.0, 4.0, 5.0),
		('Netherlands', '[[4.6,53.0],[4.9,53.0],[4.9,53.2],[4.6,53.2],[4.6,53.0]]', 53.0, 53.2, 4.6, 4.9)
	`)
	if err != nil {
		t.Fatalf("Failed to insert test data: %v", err)
	}

	poly, err := loadPolygonFromDB(db)
	if err != nil {
		t.Fatalf("loadPolygonFromDB() error = %v", err)
	}

	if len(poly.Rings) != 2 {
		t.Fatalf("got %d rings, want 2", len(poly.Rings))
	}
	if len(poly.Rings[0]) != 5 {
		t.Errorf("first ring has %d vertices, want 5", len(poly.Rings[0]))
	}

	b := poly.Bounds()
	if b.MinLon != 4.0 || b.MaxLat != 53.2 {
		t.Errorf("Bounds() = %+v, want MinLon 4.0 and MaxLat 53.2", b)
	}
}

func TestLoadPolygonFromDBEmpty(t *testing.T) {
	db := ringTable(t)

	if _, err := loadPolygonFromDB(db); err == nil {
		t.Error("expected error for empty table, got nil")
	}
}

func TestLoadPolygonFromDBBadGeometry(t *testing.T) {
	db := ringTable(t)

	_, err := db.Exec(`
		INSERT INTO coastline_rings (country, geometry, bbox_min_lat, bbox_max_lat, bbox_min_lon, bbox_max_lon)
		VALUES ('Netherlands', 'not json', 0, 0, 0, 0)
	`)
	if err != nil {
		t.Fatalf("Failed to insert test data: %v", err)
	}

	if _, err := loadPolygonFromDB(db); err == nil {
		t.Error("expected error for malformed geometry, got nil")
	}
}

func TestNeedsProvisioningMissingFile(t *testing.T) {
	needed, err := NeedsProvisioning("/nonexistent/dir/surfcast.db")
	if err != nil {
		t.Fatalf("NeedsProvisioning() error = %v", err)
	}
	if !needed {
		t.Error("missing database file should need provisioning")
	}
}
