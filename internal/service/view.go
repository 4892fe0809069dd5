package service

import (
	"sort"
	"strings"
	"time"

	"gopredict/internal/domain"
)

// DeriveView computes the visible trip list from the stored trips plus the
// current filter and sort criteria. It is pure: the input slice is never
// mutated and the result shares no backing array with it, so later mutation
// of the store cannot retroactively alter a view already handed out.
//
// Pipeline order: invalid-timestamp exclusion, city filter, date-range
// filter, then an optional stable sort.
func DeriveView(trips []domain.Trip, filters domain.FilterCriteria, spec domain.SortSpec) []domain.Trip {
	view := make([]domain.Trip, 0, len(trips))

	for _, trip := range trips {
		// Trips without a valid travel time are retained in the store but
		// never shown, regardless of filters.
		if !trip.HasValidTravelTime() {
			continue
		}
		if filters.City != "" && filters.City != domain.CityFilterAll && string(trip.City) != filters.City {
			continue
		}
		if !filters.StartDate.IsZero() && trip.TravelDateTime.Before(startOfDay(filters.StartDate)) {
			continue
		}
		if !filters.EndDate.IsZero() && trip.TravelDateTime.After(endOfDay(filters.EndDate)) {
			continue
		}
		view = append(view, trip)
	}

	if spec.Key != "" {
		sort.SliceStable(view, func(i, j int) bool {
			c := compareTrips(view[i], view[j], spec.Key)
			if spec.Direction == domain.SortDesc {
				c = -c
			}
			return c < 0
		})
	}

	return view
}

// startOfDay truncates to 00:00:00.000 of the bound's calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay extends to 23:59:59.999 of the bound's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999e6, t.Location())
}

// compareTrips orders two trips by the given key before direction is
// applied. A key that resolves to nothing comparable is treated as absent
// and ordered after any present value. Direction inversion later negates
// this result wholesale, absent placement included, so descending views can
// show absent values first; that matches the historically observed ordering
// and is kept as-is.
func compareTrips(a, b domain.Trip, key domain.SortKey) int {
	av, aok := sortValue(a, key)
	bv, bok := sortValue(b, key)

	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}

	if av.isNumber {
		switch {
		case av.number < bv.number:
			return -1
		case av.number > bv.number:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(av.text, bv.text)
}

// sortValue extracts the comparable value for a sort key. The second return
// is false when the key yields nothing comparable for this trip.
type tripSortValue struct {
	isNumber bool
	number   float64
	text     string
}

func sortValue(t domain.Trip, key domain.SortKey) (tripSortValue, bool) {
	switch key {
	case domain.SortKeyTravelDateTime:
		if !t.HasValidTravelTime() {
			return tripSortValue{}, false
		}
		return tripSortValue{isNumber: true, number: float64(t.TravelDateTime.UnixMilli())}, true
	case domain.SortKeyPredictedDuration:
		if t.PredictedDuration != t.PredictedDuration { // NaN
			return tripSortValue{}, false
		}
		return tripSortValue{isNumber: true, number: t.PredictedDuration}, true
	case domain.SortKeyCity:
		return tripSortValue{text: strings.ToLower(string(t.City))}, true
	case domain.SortKeyStartLocationName:
		return tripSortValue{text: strings.ToLower(t.StartLocation.Name)}, true
	case domain.SortKeyEndLocationName:
		return tripSortValue{text: strings.ToLower(t.EndLocation.Name)}, true
	default:
		return tripSortValue{}, false
	}
}
