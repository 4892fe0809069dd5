package repository

import (
	"context"

	"gopredict/internal/domain"
)

// TripRepository defines the persistence operations for trip-history
// records. Records are append-and-delete only; there are no in-place edits.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip owned by the given user.
	GetByID(ctx context.Context, ownerID, tripID string) (*domain.Trip, error)

	// ListByOwner retrieves all trips for a user, newest created first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Trip, error)

	// Delete removes a trip owned by the given user.
	Delete(ctx context.Context, ownerID, tripID string) error
}
