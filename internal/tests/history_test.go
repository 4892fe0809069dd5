package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"gopredict/internal/domain"
	"gopredict/internal/service"
)

func TestSaveTrip(t *testing.T) {
	repo := NewMockTripRepository()
	svc := newHistoryService(repo, nil)

	draft := makeDraft()
	trip, err := svc.SaveTrip(context.Background(), "owner-1", draft, domain.PredictionResult{Minutes: 23.5})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if trip.ID == "" {
		t.Error("Expected a generated trip id")
	}
	if trip.OwnerID != "owner-1" {
		t.Errorf("Expected owner-1, got %s", trip.OwnerID)
	}
	if !trip.TravelDateTime.Equal(draft.StartTime) {
		t.Errorf("Expected travel time %v, got %v", draft.StartTime, trip.TravelDateTime)
	}
	if trip.StartLocation.Name != draft.From.Name || trip.EndLocation.Name != draft.To.Name {
		t.Error("Expected location snapshots to carry the draft names")
	}
	if trip.City != domain.CityNewYork {
		t.Errorf("Expected city %s, got %s", domain.CityNewYork, trip.City)
	}
	if trip.PredictedDuration != 23.5 {
		t.Errorf("Expected 23.5 minutes, got %v", trip.PredictedDuration)
	}
	if !repo.HasTrip(trip.ID) {
		t.Error("Expected trip to be persisted")
	}
}

func TestSaveTripRequiresOwner(t *testing.T) {
	svc := newHistoryService(NewMockTripRepository(), nil)

	if _, err := svc.SaveTrip(context.Background(), "", makeDraft(), domain.PredictionResult{}); !errors.Is(err, service.ErrInvalidOwnerID) {
		t.Errorf("Expected ErrInvalidOwnerID, got %v", err)
	}
}

func TestQueryTripsFiltersAndSorts(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{
		ID: "ny-late", OwnerID: "owner-1", City: domain.CityNewYork,
		TravelDateTime: time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), PredictedDuration: 25,
	})
	repo.AddTrip(&domain.Trip{
		ID: "ny-early", OwnerID: "owner-1", City: domain.CityNewYork,
		TravelDateTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), PredictedDuration: 12,
	})
	repo.AddTrip(&domain.Trip{
		ID: "sf", OwnerID: "owner-1", City: domain.CitySanFrancisco,
		TravelDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), PredictedDuration: 40,
	})
	repo.AddTrip(&domain.Trip{
		ID: "other-owner", OwnerID: "owner-2", City: domain.CityNewYork,
		TravelDateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), PredictedDuration: 10,
	})

	svc := newHistoryService(repo, nil)

	view, err := svc.QueryTrips(context.Background(), "owner-1",
		domain.FilterCriteria{City: string(domain.CityNewYork)},
		domain.SortSpec{Key: domain.SortKeyTravelDateTime, Direction: domain.SortAsc})
	if err != nil {
		t.Fatalf("Expected query to succeed, got %v", err)
	}

	assertOrder(t, view, "ny-early", "ny-late")
}

func TestListTripsIncludesInvalidRecords(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{ID: "valid", OwnerID: "owner-1", TravelDateTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)})
	repo.AddTrip(&domain.Trip{ID: "invalid", OwnerID: "owner-1"})

	svc := newHistoryService(repo, nil)

	trips, err := svc.ListTrips(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(trips) != 2 {
		t.Errorf("Expected the raw list to include invalid records, got %d", len(trips))
	}
}
