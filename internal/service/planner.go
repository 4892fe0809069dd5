package service

import (
	"time"

	"gopredict/internal/domain"
)

// Selection is the trip-planning selection state: the from/to slots, the
// chosen travel date, and the city currently governing which locations are
// selectable.
type Selection struct {
	From       *domain.Location
	To         *domain.Location
	TravelDate time.Time
	ActiveCity domain.City
}

// NewSelection returns the initial selection state.
func NewSelection() Selection {
	return Selection{ActiveCity: domain.CityNewYork}
}

// SelectFrom sets the from-slot and recomputes the active city from it. If
// the previously selected to-location no longer matches the active city, the
// to-slot is cleared.
func SelectFrom(sel Selection, loc domain.Location) Selection {
	sel.From = &loc
	sel.ActiveCity = loc.City()
	if sel.To != nil && sel.To.City() != sel.ActiveCity {
		sel.To = nil
	}
	return sel
}

// SelectTo sets the to-slot and recomputes the active city from it. When the
// chosen location equals the current from-location it additionally reports a
// same-location warning; the selection is still applied, the warning is
// advisory only. Submit-time validation re-checks this condition as a hard
// error.
func SelectTo(sel Selection, loc domain.Location) (Selection, bool) {
	sel.To = &loc
	sel.ActiveCity = loc.City()
	warn := sel.From != nil && sel.From.ID == loc.ID
	return sel, warn
}

// SelectTravelDate sets the travel date.
func SelectTravelDate(sel Selection, date time.Time) Selection {
	sel.TravelDate = date
	return sel
}

// CanPredict reports whether the selection is complete enough to offer a
// prediction: both locations set, a date set, and distinct location ids.
// This intentionally does not re-check city consistency; that happens in
// ValidateForPrediction at submit time.
func CanPredict(sel Selection) bool {
	return sel.From != nil && sel.To != nil && !sel.TravelDate.IsZero() &&
		sel.From.ID != sel.To.ID
}

// ValidateForPrediction is the submit-time gate in front of the predictor.
// ErrSameLocation takes precedence when both conditions hold.
func ValidateForPrediction(from, to domain.Location) error {
	if from.ID == to.ID {
		return ErrSameLocation
	}
	if from.City() != to.City() {
		return ErrCrossCity
	}
	return nil
}
