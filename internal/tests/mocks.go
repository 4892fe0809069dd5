package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"gopredict/internal/domain"
	"gopredict/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of repository.TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	ListError   error
	DeleteError error

	// DeleteStarted/DeleteRelease make Delete block until released, to test
	// in-flight guards. Both must be set together.
	DeleteStarted chan struct{}
	DeleteRelease chan struct{}
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *trip
	m.trips[trip.ID] = &stored
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, ownerID, tripID string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[tripID]
	if !ok || trip.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	stored := *trip
	return &stored, nil
}

func (m *MockTripRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Trip, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Trip
	for _, t := range m.trips {
		if t.OwnerID == ownerID {
			stored := *t
			result = append(result, &stored)
		}
	}
	return result, nil
}

func (m *MockTripRepository) Delete(ctx context.Context, ownerID, tripID string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteStarted != nil {
		close(m.DeleteStarted)
		<-m.DeleteRelease
	}
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[tripID]
	if !ok || trip.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(m.trips, tripID)
	return nil
}

// HasTrip reports whether the trip is still stored, for test assertions.
func (m *MockTripRepository) HasTrip(tripID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.trips[tripID]
	return ok
}

// ──────────────────────────────────────────────
// MOCK PROFILE REPOSITORY
// ──────────────────────────────────────────────

// MockProfileRepository is a mock implementation of
// repository.ProfileRepository.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile

	UpdateCallCount int32
	UpdateError     error

	// UpdateStarted/UpdateRelease make Update block until released.
	UpdateStarted chan struct{}
	UpdateRelease chan struct{}
}

// NewMockProfileRepository creates a new mock profile repository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]*domain.Profile),
	}
}

// AddProfile adds a profile to the mock repository.
func (m *MockProfileRepository) AddProfile(profile *domain.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.OwnerID] = profile
}

func (m *MockProfileRepository) Get(ctx context.Context, ownerID string) (*domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	profile, ok := m.profiles[ownerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored := *profile
	return &stored, nil
}

func (m *MockProfileRepository) Update(ctx context.Context, ownerID string, update domain.ProfileUpdate) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateStarted != nil {
		close(m.UpdateStarted)
		<-m.UpdateRelease
	}
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[ownerID]
	if !ok {
		return repository.ErrNotFound
	}
	if update.DisplayName != nil {
		profile.DisplayName = *update.DisplayName
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.Location != nil {
		profile.Location = *update.Location
	}
	return nil
}

// ──────────────────────────────────────────────
// MOCK PREDICTOR CLIENT
// ──────────────────────────────────────────────

// MockPredictorClient is a mock implementation of service.PredictorClient.
type MockPredictorClient struct {
	Result domain.PredictionResult
	Err    error

	PredictCallCount int32

	// PredictStarted/PredictRelease make Predict block until released.
	PredictStarted chan struct{}
	PredictRelease chan struct{}

	startedOnce sync.Once
}

// NewMockPredictorClient creates a mock predictor returning the given
// minutes.
func NewMockPredictorClient(minutes float64) *MockPredictorClient {
	return &MockPredictorClient{Result: domain.PredictionResult{Minutes: minutes}}
}

func (m *MockPredictorClient) Predict(ctx context.Context, draft domain.TripDraft) (domain.PredictionResult, error) {
	atomic.AddInt32(&m.PredictCallCount, 1)
	if m.PredictStarted != nil {
		m.startedOnce.Do(func() { close(m.PredictStarted) })
		<-m.PredictRelease
	}
	if m.Err != nil {
		return domain.PredictionResult{}, m.Err
	}
	return m.Result, nil
}

// ──────────────────────────────────────────────
// MOCK PREDICTION CACHE
// ──────────────────────────────────────────────

// MockPredictionCache is an in-memory service.PredictionCache.
type MockPredictionCache struct {
	mu      sync.Mutex
	entries map[string]domain.PredictionResult

	GetCallCount int32
	SetCallCount int32
}

// NewMockPredictionCache creates a new mock prediction cache.
func NewMockPredictionCache() *MockPredictionCache {
	return &MockPredictionCache{entries: make(map[string]domain.PredictionResult)}
}

func cacheKey(draft domain.TripDraft) string {
	return draft.From.ID + "|" + draft.To.ID + "|" + draft.StartTime.UTC().Format("2006-01-02T15")
}

func (m *MockPredictionCache) GetPrediction(ctx context.Context, draft domain.TripDraft) (*domain.PredictionResult, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if result, ok := m.entries[cacheKey(draft)]; ok {
		stored := result
		return &stored, nil
	}
	return nil, nil
}

func (m *MockPredictionCache) SetPrediction(ctx context.Context, draft domain.TripDraft, result domain.PredictionResult) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[cacheKey(draft)] = result
	return nil
}

// ──────────────────────────────────────────────
// MOCK DELETE LOCK
// ──────────────────────────────────────────────

// MockDeleteLock is an in-memory service.DeleteLock.
type MockDeleteLock struct {
	mu   sync.Mutex
	held map[string]bool

	AcquireError error
}

// NewMockDeleteLock creates a new mock delete lock.
func NewMockDeleteLock() *MockDeleteLock {
	return &MockDeleteLock{held: make(map[string]bool)}
}

func (m *MockDeleteLock) Acquire(ctx context.Context, ownerID string, ttl time.Duration) (bool, error) {
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[ownerID] {
		return false, nil
	}
	m.held[ownerID] = true
	return true, nil
}

func (m *MockDeleteLock) Release(ctx context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, ownerID)
	return nil
}
