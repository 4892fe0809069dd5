package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"gopredict/internal/domain"
	"gopredict/internal/service"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2025-06-01T09:30:00Z", time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-06-01T09:30:00.250Z", time.Date(2025, 6, 1, 9, 30, 0, 250e6, time.UTC)},
		{"2025-06-01T09:30:00", time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-06-01 09:30:00", time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"not-a-date", time.Time{}},
		{"", time.Time{}},
	}

	for _, tc := range cases {
		if got := service.ParseTimestamp(tc.raw); !got.Equal(tc.want) {
			t.Errorf("ParseTimestamp(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestNormalizeTripKeepsRecordOnBadTimestamp(t *testing.T) {
	raw := domain.RawTrip{
		ID:                "trip-a",
		OwnerID:           "owner-1",
		CreatedAt:         "2025-06-01T09:00:00Z",
		TravelDateTime:    "garbage",
		StartLocation:     domain.Place{Name: "Times Square", Lat: 40.758, Lon: -73.9855},
		EndLocation:       domain.Place{Name: "Central Park", Lat: 40.7829, Lon: -73.9654},
		City:              domain.CityNewYork,
		PredictedDuration: 17,
	}

	trip := service.NormalizeTrip(raw)

	// The bad field gets the invalid marker; everything else survives.
	if trip.HasValidTravelTime() {
		t.Error("Expected the invalid travel-time marker")
	}
	if trip.ID != "trip-a" || trip.OwnerID != "owner-1" {
		t.Error("Expected identity fields to be preserved")
	}
	if trip.StartLocation.Name != "Times Square" || trip.PredictedDuration != 17 {
		t.Error("Expected non-temporal fields to be preserved")
	}
	if trip.CreatedAt.IsZero() {
		t.Error("Expected the parseable created-at to survive")
	}
}

func TestNormalizedInvalidTripIsStoredButHidden(t *testing.T) {
	repo := NewMockTripRepository()
	svc := newHistoryService(repo, nil)

	raw := domain.RawTrip{
		TravelDateTime:    "garbage",
		City:              domain.CityNewYork,
		PredictedDuration: 17,
	}

	trip, err := svc.IngestTrip(context.Background(), "owner-1", raw)
	if err != nil {
		t.Fatalf("Expected ingestion to accept the record, got %v", err)
	}
	if trip.ID == "" {
		t.Error("Expected a generated trip id")
	}
	if !repo.HasTrip(trip.ID) {
		t.Error("Expected the invalid record to be stored")
	}

	view, err := svc.QueryTrips(context.Background(), "owner-1", domain.FilterCriteria{}, domain.SortSpec{})
	if err != nil {
		t.Fatalf("Expected query to succeed, got %v", err)
	}
	if len(view) != 0 {
		t.Errorf("Expected the invalid record to be hidden from views, got %d trips", len(view))
	}
}

func TestIngestTripRejectsUnknownCity(t *testing.T) {
	svc := newHistoryService(NewMockTripRepository(), nil)

	raw := domain.RawTrip{
		TravelDateTime: "2025-06-01T09:00:00Z",
		City:           domain.City("chicago"),
	}

	if _, err := svc.IngestTrip(context.Background(), "owner-1", raw); !errors.Is(err, service.ErrInvalidCity) {
		t.Errorf("Expected ErrInvalidCity, got %v", err)
	}
}
