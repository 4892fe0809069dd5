package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gopredict/internal/domain"
	"gopredict/internal/service"
)

func newHistoryService(repo *MockTripRepository, lock service.DeleteLock) *service.HistoryService {
	return service.NewHistoryService(repo, service.NewDeletionCoordinator(), lock, nil)
}

func TestDeletionRequestConfirm(t *testing.T) {
	coord := service.NewDeletionCoordinator()

	if err := coord.RequestConfirm("trip-a"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := coord.PendingTripID(); got != "trip-a" {
		t.Errorf("Expected pending trip-a, got %q", got)
	}

	if err := coord.RequestConfirm(""); !errors.Is(err, service.ErrInvalidTripID) {
		t.Errorf("Expected ErrInvalidTripID, got %v", err)
	}
}

func TestDeletionRequestReplacesPending(t *testing.T) {
	coord := service.NewDeletionCoordinator()

	_ = coord.RequestConfirm("trip-a")
	if err := coord.RequestConfirm("trip-b"); err != nil {
		t.Fatalf("Expected replacement to succeed, got %v", err)
	}

	// The slot holds one id; the newer request wins outright.
	if got := coord.PendingTripID(); got != "trip-b" {
		t.Errorf("Expected pending trip-b, got %q", got)
	}
	if err := coord.BeginDelete("trip-a"); !errors.Is(err, service.ErrNoPendingDelete) {
		t.Errorf("Expected stale confirmation to fail, got %v", err)
	}
}

func TestDeletionCancel(t *testing.T) {
	coord := service.NewDeletionCoordinator()

	_ = coord.RequestConfirm("trip-a")
	coord.Cancel()

	if got := coord.PendingTripID(); got != "" {
		t.Errorf("Expected no pending trip after cancel, got %q", got)
	}
	if err := coord.BeginDelete("trip-a"); !errors.Is(err, service.ErrNoPendingDelete) {
		t.Errorf("Expected ErrNoPendingDelete after cancel, got %v", err)
	}

	// Cancel in the idle state is a no-op.
	coord.Cancel()
}

func TestDeletionConfirmWithoutRequest(t *testing.T) {
	coord := service.NewDeletionCoordinator()

	if err := coord.BeginDelete("trip-a"); !errors.Is(err, service.ErrNoPendingDelete) {
		t.Errorf("Expected ErrNoPendingDelete, got %v", err)
	}
}

func TestDeletionFinishAlwaysReturnsToIdle(t *testing.T) {
	coord := service.NewDeletionCoordinator()

	_ = coord.RequestConfirm("trip-a")
	if err := coord.BeginDelete("trip-a"); err != nil {
		t.Fatalf("Expected BeginDelete to succeed, got %v", err)
	}
	if got := coord.DeletingTripID(); got != "trip-a" {
		t.Errorf("Expected deleting trip-a, got %q", got)
	}

	coord.FinishDelete()

	if coord.PendingTripID() != "" || coord.DeletingTripID() != "" {
		t.Error("Expected coordinator to be idle after FinishDelete")
	}
}

func TestConfirmDeleteRemovesTrip(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{ID: "trip-a", OwnerID: "owner-1"})
	svc := newHistoryService(repo, NewMockDeleteLock())

	if err := svc.RequestDeleteConfirm("trip-a"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.ConfirmDelete(context.Background(), "owner-1", "trip-a"); err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}

	if repo.HasTrip("trip-a") {
		t.Error("Expected trip to be removed from the store")
	}
	if svc.Deletion().PendingTripID() != "" || svc.Deletion().DeletingTripID() != "" {
		t.Error("Expected slot to be idle after a successful delete")
	}
}

func TestConfirmDeleteFailureKeepsTrip(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{ID: "trip-a", OwnerID: "owner-1"})
	repo.DeleteError = errors.New("connection reset")
	svc := newHistoryService(repo, nil)

	_ = svc.RequestDeleteConfirm("trip-a")
	err := svc.ConfirmDelete(context.Background(), "owner-1", "trip-a")

	if !errors.Is(err, service.ErrTripDeleteFailed) {
		t.Fatalf("Expected ErrTripDeleteFailed, got %v", err)
	}
	if !repo.HasTrip("trip-a") {
		t.Error("Expected trip to remain in the store after a failed delete")
	}
	// Failure does not restore the pending intent.
	if svc.Deletion().PendingTripID() != "" {
		t.Error("Expected slot to be idle, not pending, after a failed delete")
	}
}

func TestConfirmDeleteRejectedWhileDeleteInFlight(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{ID: "trip-a", OwnerID: "owner-1"})
	repo.DeleteStarted = make(chan struct{})
	repo.DeleteRelease = make(chan struct{})
	svc := newHistoryService(repo, nil)

	_ = svc.RequestDeleteConfirm("trip-a")

	done := make(chan error, 1)
	go func() {
		done <- svc.ConfirmDelete(context.Background(), "owner-1", "trip-a")
	}()

	<-repo.DeleteStarted

	// While the delete is in flight the slot rejects new requests.
	if err := svc.RequestDeleteConfirm("trip-b"); !errors.Is(err, service.ErrDeleteInProgress) {
		t.Errorf("Expected ErrDeleteInProgress, got %v", err)
	}

	close(repo.DeleteRelease)
	if err := <-done; err != nil {
		t.Fatalf("Expected delete to succeed, got %v", err)
	}
	if atomic.LoadInt32(&repo.DeleteCallCount) != 1 {
		t.Errorf("Expected exactly one delete call, got %d", repo.DeleteCallCount)
	}
}

func TestConfirmDeleteHeldLockRejects(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{ID: "trip-a", OwnerID: "owner-1"})
	lock := NewMockDeleteLock()
	svc := newHistoryService(repo, lock)

	// Simulate another replica holding the owner's lock.
	acquired, err := lock.Acquire(context.Background(), "owner-1", time.Minute)
	if err != nil || !acquired {
		t.Fatalf("Expected to pre-acquire the lock, got %v %v", acquired, err)
	}

	_ = svc.RequestDeleteConfirm("trip-a")
	if err := svc.ConfirmDelete(context.Background(), "owner-1", "trip-a"); !errors.Is(err, service.ErrDeleteInProgress) {
		t.Errorf("Expected ErrDeleteInProgress, got %v", err)
	}
	if !repo.HasTrip("trip-a") {
		t.Error("Expected trip to remain when the lock was held elsewhere")
	}
}

func TestConfirmDeleteLockErrorDegradesToLocalGuard(t *testing.T) {
	repo := NewMockTripRepository()
	repo.AddTrip(&domain.Trip{ID: "trip-a", OwnerID: "owner-1"})
	lock := NewMockDeleteLock()
	lock.AcquireError = errors.New("redis down")
	svc := newHistoryService(repo, lock)

	_ = svc.RequestDeleteConfirm("trip-a")
	if err := svc.ConfirmDelete(context.Background(), "owner-1", "trip-a"); err != nil {
		t.Fatalf("Expected delete to proceed despite the lock store error, got %v", err)
	}
	if repo.HasTrip("trip-a") {
		t.Error("Expected trip to be removed")
	}
}
