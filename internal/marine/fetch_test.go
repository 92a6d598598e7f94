package marine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JellevanE/surf-vibe-code/internal/models"
)

func TestFetchAllPartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail the request for the second spot only
		if r.URL.Query().Get("latitude") == "52.3750" {
			http.Error(w, "no data", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleWaveResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	spots := []models.Spot{
		{Name: "Scheveningen", Latitude: 52.108, Longitude: 4.257},
		{Name: "Zandvoort", Latitude: 52.375, Longitude: 4.527},
		{Name: "Texel Paal 17", Latitude: 53.078, Longitude: 4.733},
	}

	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	results := FetchAll(context.Background(), client, spots, now)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0] == nil || results[2] == nil {
		t.Fatal("successful spots should have observations")
	}
	if results[1] != nil {
		t.Error("failed spot should yield a nil entry, not abort the batch")
	}

	if results[0].Name != "Scheveningen" {
		t.Errorf("results[0].Name = %s, want Scheveningen", results[0].Name)
	}
	// now is between the 10:00 and 11:00 samples, so the 11:00 sample
	// (height 1.2) is current
	if results[0].Height != 1.2 {
		t.Errorf("results[0].Height = %v, want 1.2", results[0].Height)
	}
}

func TestFetchAllEmptySpots(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")
	results := FetchAll(context.Background(), client, nil, time.Now())
	if len(results) != 0 {
		t.Errorf("got %d results for no spots, want 0", len(results))
	}
}
