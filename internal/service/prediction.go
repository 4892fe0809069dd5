package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"gopredict/internal/domain"
)

// PredictorClient is the external travel-time prediction boundary.
type PredictorClient interface {
	Predict(ctx context.Context, draft domain.TripDraft) (domain.PredictionResult, error)
}

// PredictionCache caches accepted predictions keyed by draft.
type PredictionCache interface {
	GetPrediction(ctx context.Context, draft domain.TripDraft) (*domain.PredictionResult, error)
	SetPrediction(ctx context.Context, draft domain.TripDraft, result domain.PredictionResult) error
}

const (
	// mobileViewportMaxWidth is the widest viewport still treated as mobile.
	mobileViewportMaxWidth = 768

	// mobileRevealDelay defers the reveal event on mobile viewports so the
	// result animates in after the layout settles.
	mobileRevealDelay = 900 * time.Millisecond
)

// RevealEvent announces that an accepted prediction may be scrolled and
// animated into view.
type RevealEvent struct {
	OwnerID string
	Minutes float64
	At      time.Time
}

// PredictionOutcome is an accepted prediction plus the reveal delay the
// consuming surface must honor.
type PredictionOutcome struct {
	Result      domain.PredictionResult
	RevealDelay time.Duration
}

// PredictionService orchestrates the prediction request lifecycle: submit-
// time validation, the single in-flight external call, result acceptance,
// and reveal timing. Cache and notifier collaborators are optional.
type PredictionService struct {
	predictor PredictorClient
	cache     PredictionCache
	notifier  *NotificationService

	mu       sync.Mutex
	inFlight bool

	reveals chan RevealEvent
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(predictor PredictorClient, cache PredictionCache, notifier *NotificationService) *PredictionService {
	return &PredictionService{
		predictor: predictor,
		cache:     cache,
		notifier:  notifier,
		reveals:   make(chan RevealEvent, 16),
	}
}

// Reveals exposes the reveal event stream.
func (s *PredictionService) Reveals() <-chan RevealEvent {
	return s.reveals
}

// RevealDelay returns how long the reveal of an accepted result must be
// deferred for the given viewport width: 900ms at or below 768 logical
// pixels, immediate above.
func RevealDelay(viewportWidth int) time.Duration {
	if viewportWidth > 0 && viewportWidth <= mobileViewportMaxWidth {
		return mobileRevealDelay
	}
	return 0
}

// Predict runs one prediction request for the draft. A second call while one
// is outstanding is rejected with ErrPredictionInFlight; the attempt is not
// queued. Validation failures abort before any network call. A response
// whose minutes are missing or non-finite is treated identically to a
// transport failure: a generic unavailable error, no state mutated beyond
// the in-flight flag.
func (s *PredictionService) Predict(ctx context.Context, ownerID string, draft domain.TripDraft, viewportWidth int) (*PredictionOutcome, error) {
	if draft.From.ID == "" || draft.To.ID == "" || draft.StartTime.IsZero() {
		return nil, ErrMissingRequiredField
	}

	if err := ValidateForPrediction(draft.From, draft.To); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrPredictionInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	result, err := s.resolve(ctx, draft)
	if err != nil {
		if s.notifier != nil {
			_ = s.notifier.NotifyPredictionUnavailable(ctx, ownerID)
		}
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyPredictionReady(ctx, ownerID, draft, result)
	}

	delay := RevealDelay(viewportWidth)
	s.scheduleReveal(RevealEvent{OwnerID: ownerID, Minutes: result.Minutes}, delay)

	return &PredictionOutcome{Result: result, RevealDelay: delay}, nil
}

// resolve answers the draft from cache or from the external predictor.
func (s *PredictionService) resolve(ctx context.Context, draft domain.TripDraft) (domain.PredictionResult, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPrediction(ctx, draft); err == nil && cached != nil {
			return *cached, nil
		}
	}

	result, err := s.predictor.Predict(ctx, draft)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("%w: %v", ErrPredictionUnavailable, err)
	}

	if math.IsNaN(result.Minutes) || math.IsInf(result.Minutes, 0) {
		return domain.PredictionResult{}, ErrPredictionUnavailable
	}

	if s.cache != nil {
		_ = s.cache.SetPrediction(ctx, draft, result)
	}

	return result, nil
}

// scheduleReveal emits the reveal event after the given delay. A full
// channel drops the event rather than blocking the request path.
func (s *PredictionService) scheduleReveal(event RevealEvent, delay time.Duration) {
	emit := func() {
		event.At = time.Now()
		select {
		case s.reveals <- event:
		default:
		}
	}

	if delay > 0 {
		time.AfterFunc(delay, emit)
		return
	}
	emit()
}
