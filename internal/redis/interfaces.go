package redis

import (
	"context"

	"gopredict/internal/domain"
)

// LocationCatalogInterface defines the location catalog operations.
type LocationCatalogInterface interface {
	Seed(ctx context.Context, locations []domain.Location) error
	ListByCity(ctx context.Context, city domain.City) ([]domain.Location, error)
	Nearby(ctx context.Context, city domain.City, lat, lon, radiusKm float64) ([]domain.Location, error)
}

// Ensure concrete types implement interfaces.
var _ LocationCatalogInterface = (*LocationCatalog)(nil)
