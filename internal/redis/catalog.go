package redis

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"gopredict/internal/domain"
)

const (
	catalogKeyPrefix = "locations:catalog:" // hash: id -> location JSON
	geoKeyPrefix     = "locations:geo:"     // geo set per city
)

// catalogEntry is the stored form of a catalog location.
type catalogEntry struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// LocationCatalog holds the selectable locations per city in Redis: a hash
// for metadata and a geo set for proximity queries.
type LocationCatalog struct {
	client *redis.Client
}

// NewLocationCatalog creates a new LocationCatalog.
func NewLocationCatalog(client *redis.Client) *LocationCatalog {
	return &LocationCatalog{client: client}
}

// Seed stores the given locations, grouped by the city their id encodes.
// Seeding is idempotent; existing entries are overwritten.
func (c *LocationCatalog) Seed(ctx context.Context, locations []domain.Location) error {
	for _, loc := range locations {
		city := string(loc.City())

		data, err := json.Marshal(catalogEntry{ID: loc.ID, Name: loc.Name, Lat: loc.Lat, Lon: loc.Lon})
		if err != nil {
			return err
		}

		if err := c.client.HSet(ctx, catalogKeyPrefix+city, loc.ID, data).Err(); err != nil {
			return err
		}

		if err := c.client.GeoAdd(ctx, geoKeyPrefix+city, &redis.GeoLocation{
			Name:      loc.ID,
			Longitude: loc.Lon,
			Latitude:  loc.Lat,
		}).Err(); err != nil {
			return err
		}
	}
	return nil
}

// ListByCity returns the catalog for one city, ordered by name.
func (c *LocationCatalog) ListByCity(ctx context.Context, city domain.City) ([]domain.Location, error) {
	entries, err := c.client.HGetAll(ctx, catalogKeyPrefix+string(city)).Result()
	if err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(entries))
	for _, raw := range entries {
		var entry catalogEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, err
		}
		locations = append(locations, domain.Location{
			ID:   entry.ID,
			Name: entry.Name,
			Lat:  entry.Lat,
			Lon:  entry.Lon,
		})
	}

	sort.Slice(locations, func(i, j int) bool { return locations[i].Name < locations[j].Name })
	return locations, nil
}

// Nearby returns catalog locations within radiusKm of a point, closest
// first.
func (c *LocationCatalog) Nearby(ctx context.Context, city domain.City, lat, lon, radiusKm float64) ([]domain.Location, error) {
	results, err := c.client.GeoRadius(ctx, geoKeyPrefix+string(city), lon, lat, &redis.GeoRadiusQuery{
		Radius:    radiusKm,
		Unit:      "km",
		WithCoord: true,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(results))
	for _, r := range results {
		name, err := c.lookupName(ctx, city, r.Name)
		if err != nil {
			return nil, err
		}
		locations = append(locations, domain.Location{
			ID:   r.Name,
			Name: name,
			Lat:  r.Latitude,
			Lon:  r.Longitude,
		})
	}

	return locations, nil
}

func (c *LocationCatalog) lookupName(ctx context.Context, city domain.City, id string) (string, error) {
	raw, err := c.client.HGet(ctx, catalogKeyPrefix+string(city), id).Result()
	if err != nil {
		if err == redis.Nil {
			return id, nil
		}
		return "", err
	}

	var entry catalogEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return "", err
	}
	return entry.Name, nil
}
