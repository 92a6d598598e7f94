// Package marine fetches wave forecasts from the Open-Meteo Marine
// API and extracts the current observation per spot.
package marine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/JellevanE/surf-vibe-code/internal/models"
)

// Client talks to the Open-Meteo Marine API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a new marine API client. Requests are throttled to
// stay polite toward the free public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://marine-api.open-meteo.com"
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "surfcast/1.0 (github.com/JellevanE/surf-vibe-code)",
		limiter:   rate.NewLimiter(rate.Every(200*time.Millisecond), 2),
	}
}

// GetWaveSeries retrieves the hourly wave forecast for a location.
func (c *Client) GetWaveSeries(ctx context.Context, lat, lon float64) (*models.WaveSeries, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%.4f", lat))
	params.Add("longitude", fmt.Sprintf("%.4f", lon))
	params.Add("hourly", "wave_height,wave_period,wave_direction")
	params.Add("timezone", "UTC")

	requestURL := fmt.Sprintf("%s/v1/marine?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wave data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var waveResp waveResponse
	if err := json.NewDecoder(resp.Body).Decode(&waveResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return waveResp.toSeries()
}

// Internal types for Open-Meteo API responses

type waveResponse struct {
	Hourly struct {
		Time          []string   `json:"time"`
		WaveHeight    []*float64 `json:"wave_height"`
		WavePeriod    []*float64 `json:"wave_period"`
		WaveDirection []*float64 `json:"wave_direction"`
	} `json:"hourly"`
}

func (r waveResponse) toSeries() (*models.WaveSeries, error) {
	n := len(r.Hourly.Time)
	if n == 0 {
		return nil, fmt.Errorf("response contains no hourly data")
	}

	series := &models.WaveSeries{
		Times:      make([]time.Time, 0, n),
		Heights:    make([]float64, n),
		Periods:    make([]float64, n),
		Directions: make([]float64, n),
	}

	for _, ts := range r.Hourly.Time {
		// Open-Meteo returns zone-less timestamps in the requested
		// timezone (UTC here)
		t, err := time.Parse("2006-01-02T15:04", ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		series.Times = append(series.Times, t.UTC())
	}

	for i := 0; i < n; i++ {
		series.Heights[i] = deref(r.Hourly.WaveHeight, i)
		series.Periods[i] = deref(r.Hourly.WavePeriod, i)
		series.Directions[i] = deref(r.Hourly.WaveDirection, i)
	}
	return series, nil
}

// deref converts a possibly-null, possibly-short API array entry to a
// float, with NaN marking gaps.
func deref(vals []*float64, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return math.NaN()
	}
	return *vals[i]
}
