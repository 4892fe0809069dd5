package domain

import "time"

// Trip is a recorded trip-history entry. Trips are created once from a
// prediction draft and are never edited in place; the only mutation is
// removal.
type Trip struct {
	ID                string
	OwnerID           string
	CreatedAt         time.Time
	TravelDateTime    time.Time // zero time is the reserved invalid marker
	StartLocation     Place
	EndLocation       Place
	City              City
	PredictedDuration float64 // minutes
}

// HasValidTravelTime reports whether the trip carries a usable travel
// timestamp. Trips without one stay in the store but are excluded from
// every derived view.
func (t Trip) HasValidTravelTime() bool {
	return !t.TravelDateTime.IsZero()
}

// RawTrip is a trip record as received from the outside: temporal fields are
// untrusted strings. Normalization converts it into a Trip, isolating a bad
// timestamp to that single field instead of dropping the record.
type RawTrip struct {
	ID                string  `json:"id"`
	OwnerID           string  `json:"owner_id"`
	CreatedAt         string  `json:"created_at"`
	TravelDateTime    string  `json:"travel_date_time"`
	StartLocation     Place   `json:"start_location"`
	EndLocation       Place   `json:"end_location"`
	City              City    `json:"city"`
	PredictedDuration float64 `json:"predicted_duration"`
}

// TripDraft is the validated shape submitted to the predictor.
type TripDraft struct {
	From      Location
	To        Location
	StartTime time.Time
	City      City
}

// PredictionResult is the predictor's answer for a draft.
type PredictionResult struct {
	Minutes float64
}
