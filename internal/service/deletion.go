package service

import "sync"

// deletionState is the phase of the single deletion slot.
type deletionState int

const (
	deletionIdle deletionState = iota
	deletionPendingConfirm
	deletionDeleting
)

// DeletionCoordinator guards destructive trip deletion with a single
// confirmation slot: Idle -> PendingConfirm(id) -> Deleting(id) -> Idle.
// At most one trip id can be pending and at most one delete can be in
// flight at any time; the slot is always empty at rest.
type DeletionCoordinator struct {
	mu     sync.Mutex
	state  deletionState
	tripID string
}

// NewDeletionCoordinator returns a coordinator in the Idle state.
func NewDeletionCoordinator() *DeletionCoordinator {
	return &DeletionCoordinator{}
}

// RequestConfirm moves the slot to PendingConfirm for the given trip.
// Requesting confirmation for a different trip while one is already pending
// silently replaces it. While a delete is in flight every request is
// rejected.
func (c *DeletionCoordinator) RequestConfirm(tripID string) error {
	if tripID == "" {
		return ErrInvalidTripID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == deletionDeleting {
		return ErrDeleteInProgress
	}

	c.state = deletionPendingConfirm
	c.tripID = tripID
	return nil
}

// Cancel clears a pending confirmation. It is a no-op in any other state.
func (c *DeletionCoordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == deletionPendingConfirm {
		c.state = deletionIdle
		c.tripID = ""
	}
}

// BeginDelete transitions PendingConfirm(id) to Deleting(id). Confirming a
// trip that is not the pending one fails.
func (c *DeletionCoordinator) BeginDelete(tripID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == deletionDeleting {
		return ErrDeleteInProgress
	}
	if c.state != deletionPendingConfirm || c.tripID != tripID {
		return ErrNoPendingDelete
	}

	c.state = deletionDeleting
	return nil
}

// FinishDelete returns the slot to Idle after the delete attempt resolves.
// The outcome does not matter: a failed delete does not restore the pending
// intent, the user must re-initiate.
func (c *DeletionCoordinator) FinishDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = deletionIdle
	c.tripID = ""
}

// PendingTripID returns the trip awaiting confirmation, or "" if none.
func (c *DeletionCoordinator) PendingTripID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == deletionPendingConfirm {
		return c.tripID
	}
	return ""
}

// DeletingTripID returns the trip whose delete is in flight, or "" if none.
func (c *DeletionCoordinator) DeletingTripID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == deletionDeleting {
		return c.tripID
	}
	return ""
}
