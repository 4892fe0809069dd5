// Package predictor is the HTTP client for the external travel-time
// prediction API.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gopredict/internal/domain"
)

// Client calls the prediction API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a predictor client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// predictRequest is the wire shape of a prediction request.
type predictRequest struct {
	From      locationPayload `json:"from"`
	To        locationPayload `json:"to"`
	StartTime string          `json:"startTime"`
	City      domain.City     `json:"city"`
}

type locationPayload struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// predictResponse is the wire shape of a prediction response. Minutes is a
// pointer so a missing field is distinguishable from zero.
type predictResponse struct {
	Minutes *float64 `json:"minutes"`
}

// Predict requests a travel-time prediction for the draft. A missing
// minutes field is reported as an error; the caller treats it like any
// other transport failure.
func (c *Client) Predict(ctx context.Context, draft domain.TripDraft) (domain.PredictionResult, error) {
	payload := predictRequest{
		From:      toPayload(draft.From),
		To:        toPayload(draft.To),
		StartTime: draft.StartTime.Format(time.RFC3339),
		City:      draft.City,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("predict request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PredictionResult{}, fmt.Errorf("predict request: unexpected status %d", resp.StatusCode)
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("decode predict response: %w", err)
	}

	if decoded.Minutes == nil {
		return domain.PredictionResult{}, fmt.Errorf("predict response missing minutes")
	}

	return domain.PredictionResult{Minutes: *decoded.Minutes}, nil
}

func toPayload(loc domain.Location) locationPayload {
	return locationPayload{ID: loc.ID, Name: loc.Name, Lat: loc.Lat, Lon: loc.Lon}
}
