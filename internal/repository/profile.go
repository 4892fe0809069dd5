package repository

import (
	"context"

	"gopredict/internal/domain"
)

// ProfileRepository defines the persistence operations for user profiles.
type ProfileRepository interface {
	// Get retrieves the profile for a user.
	Get(ctx context.Context, ownerID string) (*domain.Profile, error)

	// Update applies a partial edit to the profile.
	Update(ctx context.Context, ownerID string, update domain.ProfileUpdate) error
}
