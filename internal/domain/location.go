package domain

// Location is a selectable catalog entry.
type Location struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// City derives the location's city from its id.
func (l Location) City() City {
	return CityOf(l.ID)
}

// Place is a location snapshot embedded in a trip record. Trips keep the
// name and coordinates as they were at prediction time; later catalog edits
// do not rewrite history.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
