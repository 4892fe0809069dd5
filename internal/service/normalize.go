package service

import (
	"time"

	"gopredict/internal/domain"
)

// timestampLayouts are tried in order when normalizing raw temporal fields.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts a raw temporal value into a timestamp. A value
// that cannot be parsed yields the zero time, the reserved invalid marker.
func ParseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// NormalizeTrip converts a raw trip payload into its canonical in-memory
// form. A temporal field that fails to parse is replaced by the invalid
// marker; the record itself is kept with all other fields intact, so one bad
// upstream value never discards the row.
func NormalizeTrip(raw domain.RawTrip) domain.Trip {
	return domain.Trip{
		ID:                raw.ID,
		OwnerID:           raw.OwnerID,
		CreatedAt:         ParseTimestamp(raw.CreatedAt),
		TravelDateTime:    ParseTimestamp(raw.TravelDateTime),
		StartLocation:     raw.StartLocation,
		EndLocation:       raw.EndLocation,
		City:              raw.City,
		PredictedDuration: raw.PredictedDuration,
	}
}
