package marine

import (
	"context"
	"sync"
	"time"

	"github.com/JellevanE/surf-vibe-code/internal/models"
)

// maxConcurrentFetches bounds the parallel API requests per batch.
const maxConcurrentFetches = 4

// FetchAll fetches the current observation for every spot in one
// batch. All fetches are issued together and the batch waits for every
// result; a failed spot yields a nil entry at its index instead of
// aborting the batch, so the heatmap stays renderable on partial data.
func FetchAll(ctx context.Context, client *Client, spots []models.Spot, now time.Time) []*models.Observation {
	results := make([]*models.Observation, len(spots))

	sem := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup

	for i, spot := range spots {
		wg.Add(1)
		go func(i int, spot models.Spot) {
			defer wg.Done()

			sem <- struct{}{}
			series, err := client.GetWaveSeries(ctx, spot.Latitude, spot.Longitude)
			<-sem

			if err != nil {
				// Leave a nil entry; the UI reports the gap
				return
			}

			obs := CurrentObservation(spot, series, now)
			results[i] = &obs
		}(i, spot)
	}

	wg.Wait()
	return results
}
