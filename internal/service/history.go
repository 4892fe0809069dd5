package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gopredict/internal/domain"
	"gopredict/internal/repository"
)

// DeleteLock serializes trip deletion per owner across replicas. The
// in-process confirmation slot already serializes deletes within one
// instance; the lock extends that guard to the deployment.
type DeleteLock interface {
	Acquire(ctx context.Context, ownerID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, ownerID string) error
}

// deleteLockTTL bounds how long a crashed delete can hold the lock.
const deleteLockTTL = 30 * time.Second

// HistoryService handles trip-history ingestion, querying, and deletion.
// Lock and notifier collaborators are optional.
type HistoryService struct {
	tripRepo repository.TripRepository
	deletion *DeletionCoordinator
	locks    DeleteLock
	notifier *NotificationService
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(tripRepo repository.TripRepository, deletion *DeletionCoordinator, locks DeleteLock, notifier *NotificationService) *HistoryService {
	return &HistoryService{
		tripRepo: tripRepo,
		deletion: deletion,
		locks:    locks,
		notifier: notifier,
	}
}

// Deletion exposes the confirmation slot state.
func (s *HistoryService) Deletion() *DeletionCoordinator {
	return s.deletion
}

// SaveTrip records an accepted prediction as a trip-history entry.
func (s *HistoryService) SaveTrip(ctx context.Context, ownerID string, draft domain.TripDraft, result domain.PredictionResult) (*domain.Trip, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}

	trip := &domain.Trip{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		CreatedAt:      time.Now(),
		TravelDateTime: draft.StartTime,
		StartLocation: domain.Place{
			Name: draft.From.Name,
			Lat:  draft.From.Lat,
			Lon:  draft.From.Lon,
		},
		EndLocation: domain.Place{
			Name: draft.To.Name,
			Lat:  draft.To.Lat,
			Lon:  draft.To.Lon,
		},
		City:              draft.City,
		PredictedDuration: result.Minutes,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// IngestTrip normalizes and stores a raw trip record. A record with an
// unparseable travel time is stored with the invalid marker rather than
// rejected; it will simply never appear in a derived view.
func (s *HistoryService) IngestTrip(ctx context.Context, ownerID string, raw domain.RawTrip) (*domain.Trip, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if _, ok := domain.ParseCity(string(raw.City)); !ok {
		return nil, ErrInvalidCity
	}

	trip := NormalizeTrip(raw)
	trip.OwnerID = ownerID
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	if err := s.tripRepo.Create(ctx, &trip); err != nil {
		return nil, err
	}

	return &trip, nil
}

// ListTrips returns all stored trips for the owner, including records whose
// travel time is invalid. Callers derive the visible list with DeriveView.
func (s *HistoryService) ListTrips(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}

	stored, err := s.tripRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	trips := make([]domain.Trip, 0, len(stored))
	for _, t := range stored {
		trips = append(trips, *t)
	}
	return trips, nil
}

// QueryTrips returns the derived view for the owner's trips under the given
// filter and sort criteria.
func (s *HistoryService) QueryTrips(ctx context.Context, ownerID string, filters domain.FilterCriteria, spec domain.SortSpec) ([]domain.Trip, error) {
	trips, err := s.ListTrips(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return DeriveView(trips, filters, spec), nil
}

// RequestDeleteConfirm marks a trip as awaiting delete confirmation.
func (s *HistoryService) RequestDeleteConfirm(tripID string) error {
	return s.deletion.RequestConfirm(tripID)
}

// CancelDelete clears a pending delete confirmation.
func (s *HistoryService) CancelDelete() {
	s.deletion.Cancel()
}

// ConfirmDelete deletes the trip previously marked for confirmation. On
// success exactly the targeted trip is removed; on failure the trip remains
// in the store and the error is surfaced. Either way the confirmation slot
// ends up Idle; a failed attempt must be re-initiated from scratch.
func (s *HistoryService) ConfirmDelete(ctx context.Context, ownerID, tripID string) error {
	if ownerID == "" {
		return ErrInvalidOwnerID
	}

	if err := s.deletion.BeginDelete(tripID); err != nil {
		return err
	}
	defer s.deletion.FinishDelete()

	if s.locks != nil {
		ok, err := s.locks.Acquire(ctx, ownerID, deleteLockTTL)
		if err == nil && !ok {
			return ErrDeleteInProgress
		}
		if err == nil {
			defer func() { _ = s.locks.Release(ctx, ownerID) }()
		}
		// A lock-store error degrades to the in-process guard only.
	}

	if err := s.tripRepo.Delete(ctx, ownerID, tripID); err != nil {
		if s.notifier != nil {
			_ = s.notifier.NotifyTripDeleteFailed(ctx, ownerID, tripID)
		}
		return fmt.Errorf("%w: %v", ErrTripDeleteFailed, err)
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyTripDeleted(ctx, ownerID, tripID)
	}
	return nil
}
