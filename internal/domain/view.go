package domain

import "time"

// CityFilterAll keeps trips from both cities.
const CityFilterAll = "all"

// FilterCriteria selects which trips appear in a derived view. StartDate and
// EndDate are independent inclusive day bounds; a zero time means the bound
// is not applied.
type FilterCriteria struct {
	City      string // CityFilterAll or a City wire value
	StartDate time.Time
	EndDate   time.Time
}

// SortKey names a sortable trip column.
type SortKey string

const (
	SortKeyTravelDateTime    SortKey = "travelDateTime"
	SortKeyPredictedDuration SortKey = "predictedDuration"
	SortKeyCity              SortKey = "city"
	SortKeyStartLocationName SortKey = "startLocation.name"
	SortKeyEndLocationName   SortKey = "endLocation.name"
)

// SortDirection orders a sorted view.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec describes the requested ordering. An empty Key means the
// pre-filter order is kept.
type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}
