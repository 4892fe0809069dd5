package service

import (
	"context"
	"sync"

	"gopredict/internal/domain"
	"gopredict/internal/repository"
)

// ProfileService handles profile reads and updates. Saves are serialized by
// their own in-flight flag; the flag is independent of the trip deletion
// slot and of the prediction busy flag, each guards exactly one class of
// operation.
type ProfileService struct {
	profileRepo repository.ProfileRepository

	mu     sync.Mutex
	saving bool
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile retrieves the owner's profile.
func (s *ProfileService) GetProfile(ctx context.Context, ownerID string) (*domain.Profile, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return s.profileRepo.Get(ctx, ownerID)
}

// SaveProfile applies a partial profile edit. A save attempted while a prior
// one is outstanding is rejected, not queued.
func (s *ProfileService) SaveProfile(ctx context.Context, ownerID string, update domain.ProfileUpdate) error {
	if ownerID == "" {
		return ErrInvalidOwnerID
	}
	if update.Empty() {
		return ErrEmptyProfileUpdate
	}

	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrProfileSaveInFlight
	}
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	return s.profileRepo.Update(ctx, ownerID, update)
}
