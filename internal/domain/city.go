package domain

import "strings"

// City identifies which of the two supported cities a location or trip
// belongs to. The wire values are fixed.
type City string

const (
	CityNewYork      City = "new_york"
	CitySanFrancisco City = "san_francisco"
)

// CityOf derives the city from a location id. Ids beginning with "ny_" are
// New York; everything else is San Francisco, matching the catalog's id
// scheme.
func CityOf(locationID string) City {
	if strings.HasPrefix(locationID, "ny_") {
		return CityNewYork
	}
	return CitySanFrancisco
}

// ParseCity validates a raw city string against the supported values.
func ParseCity(s string) (City, bool) {
	switch City(s) {
	case CityNewYork:
		return CityNewYork, true
	case CitySanFrancisco:
		return CitySanFrancisco, true
	default:
		return "", false
	}
}
