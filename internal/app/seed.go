package app

import (
	"context"

	internalRedis "gopredict/internal/redis"

	"gopredict/internal/domain"
)

// seedLocations is the built-in location catalog for the two supported
// cities. The id prefix carries the city.
var seedLocations = []domain.Location{
	{ID: "ny_times_square", Name: "Times Square", Lat: 40.758, Lon: -73.985},
	{ID: "ny_central_park", Name: "Central Park", Lat: 40.782, Lon: -73.965},
	{ID: "ny_empire_state", Name: "Empire State Building", Lat: 40.748, Lon: -73.986},
	{ID: "ny_brooklyn_bridge", Name: "Brooklyn Bridge", Lat: 40.706, Lon: -73.997},
	{ID: "ny_grand_central", Name: "Grand Central Terminal", Lat: 40.753, Lon: -73.977},
	{ID: "ny_wall_street", Name: "Wall Street", Lat: 40.707, Lon: -74.011},
	{ID: "sf_ferry_building", Name: "Ferry Building", Lat: 37.795, Lon: -122.393},
	{ID: "sf_golden_gate_park", Name: "Golden Gate Park", Lat: 37.769, Lon: -122.486},
	{ID: "sf_coit_tower", Name: "Coit Tower", Lat: 37.802, Lon: -122.405},
	{ID: "sf_fishermans_wharf", Name: "Fisherman's Wharf", Lat: 37.808, Lon: -122.417},
	{ID: "sf_mission_district", Name: "Mission District", Lat: 37.760, Lon: -122.419},
	{ID: "sf_union_square", Name: "Union Square", Lat: 37.788, Lon: -122.407},
}

// SeedLocationCatalog loads the built-in catalog into Redis.
func SeedLocationCatalog(ctx context.Context, catalog *internalRedis.LocationCatalog) error {
	return catalog.Seed(ctx, seedLocations)
}
