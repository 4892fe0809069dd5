package tests

import (
	"math"
	"testing"
	"time"

	"gopredict/internal/domain"
	"gopredict/internal/service"
)

func makeTrip(id string, city domain.City, travel time.Time, duration float64) domain.Trip {
	return domain.Trip{
		ID:                id,
		OwnerID:           "owner-1",
		CreatedAt:         time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
		TravelDateTime:    travel,
		StartLocation:     domain.Place{Name: "Start " + id},
		EndLocation:       domain.Place{Name: "End " + id},
		City:              city,
		PredictedDuration: duration,
	}
}

func tripIDs(trips []domain.Trip) []string {
	ids := make([]string, 0, len(trips))
	for _, t := range trips {
		ids = append(ids, t.ID)
	}
	return ids
}

func assertOrder(t *testing.T, trips []domain.Trip, want ...string) {
	t.Helper()
	got := tripIDs(trips)
	if len(got) != len(want) {
		t.Fatalf("Expected %d trips %v, got %v", len(want), want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestDeriveViewExcludesInvalidTravelTime(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("t1", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 25),
		makeTrip("t2", domain.CityNewYork, time.Time{}, 12),
	}

	view := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{})

	assertOrder(t, view, "t1")
}

func TestDeriveViewCityFilter(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("t1", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 25),
		makeTrip("t2", domain.CitySanFrancisco, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 12),
	}

	view := service.DeriveView(trips, domain.FilterCriteria{City: string(domain.CitySanFrancisco)}, domain.SortSpec{})
	assertOrder(t, view, "t2")

	// "all" and empty both keep everything.
	view = service.DeriveView(trips, domain.FilterCriteria{City: domain.CityFilterAll}, domain.SortSpec{})
	assertOrder(t, view, "t1", "t2")

	view = service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{})
	assertOrder(t, view, "t1", "t2")
}

func TestDeriveViewDateBoundsAreInclusive(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("early", domain.CityNewYork, time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC), 10),
		makeTrip("late", domain.CityNewYork, time.Date(2025, 6, 3, 23, 30, 0, 0, time.UTC), 10),
		makeTrip("before", domain.CityNewYork, time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC), 10),
		makeTrip("after", domain.CityNewYork, time.Date(2025, 6, 4, 0, 1, 0, 0, time.UTC), 10),
	}

	filters := domain.FilterCriteria{
		StartDate: time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
	}

	// The bounds widen to the start and end of their calendar days, so a
	// trip at 00:30 on the start day and one at 23:30 on the end day both
	// survive even though the raw bound instants would exclude them.
	view := service.DeriveView(trips, filters, domain.SortSpec{})
	assertOrder(t, view, "early", "late")
}

func TestDeriveViewSortByDuration(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("t1", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 25),
		makeTrip("t2", domain.CityNewYork, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 12),
	}

	asc := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyPredictedDuration, Direction: domain.SortAsc})
	assertOrder(t, asc, "t2", "t1")

	desc := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyPredictedDuration, Direction: domain.SortDesc})
	assertOrder(t, desc, "t1", "t2")
}

func TestDeriveViewSortByTravelDateTime(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("newer", domain.CityNewYork, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC), 10),
		makeTrip("older", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 10),
	}

	desc := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyTravelDateTime, Direction: domain.SortDesc})
	assertOrder(t, desc, "newer", "older")
}

func TestDeriveViewSortByLocationNameIsCaseInsensitive(t *testing.T) {
	a := makeTrip("a", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 10)
	a.StartLocation.Name = "brooklyn bridge"
	b := makeTrip("b", domain.CityNewYork, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 10)
	b.StartLocation.Name = "Central Park"

	view := service.DeriveView([]domain.Trip{b, a}, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyStartLocationName, Direction: domain.SortAsc})
	assertOrder(t, view, "a", "b")
}

func TestDeriveViewAbsentDurationPlacement(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("absent", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), math.NaN()),
		makeTrip("small", domain.CityNewYork, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 12),
		makeTrip("big", domain.CityNewYork, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), 25),
	}

	// Ascending: absent values sink to the end.
	asc := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyPredictedDuration, Direction: domain.SortAsc})
	assertOrder(t, asc, "small", "big", "absent")

	// Descending negates the whole comparison, absent placement included,
	// so absent values surface first. Deliberately kept that way.
	desc := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyPredictedDuration, Direction: domain.SortDesc})
	assertOrder(t, desc, "absent", "big", "small")
}

func TestDeriveViewStableOnTies(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("first", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 15),
		makeTrip("second", domain.CityNewYork, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 15),
		makeTrip("third", domain.CityNewYork, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), 15),
	}

	view := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyPredictedDuration, Direction: domain.SortAsc})
	assertOrder(t, view, "first", "second", "third")
}

func TestDeriveViewUnknownSortKeyPreservesOrder(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("t1", domain.CityNewYork, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 25),
		makeTrip("t2", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 12),
	}

	view := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKey("bogus"), Direction: domain.SortAsc})
	assertOrder(t, view, "t1", "t2")
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	trips := []domain.Trip{
		makeTrip("t1", domain.CityNewYork, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 25),
		makeTrip("t2", domain.CityNewYork, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), 12),
	}

	view := service.DeriveView(trips, domain.FilterCriteria{}, domain.SortSpec{Key: domain.SortKeyTravelDateTime, Direction: domain.SortAsc})

	if trips[0].ID != "t1" || trips[1].ID != "t2" {
		t.Error("Expected input slice order to be untouched")
	}

	view[0].ID = "mutated"
	if trips[0].ID == "mutated" || trips[1].ID == "mutated" {
		t.Error("Expected view to not share backing storage with the input")
	}
}
