package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gopredict/internal/domain"
)

// PredictionCacheTTL bounds how long an accepted prediction is reused.
// Predictions depend on traffic conditions, so the window is short.
const PredictionCacheTTL = 5 * time.Minute

const predictionCachePrefix = "cache:prediction:"

// CacheStore caches accepted prediction results in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// cachedPrediction is the stored form of a prediction result.
type cachedPrediction struct {
	Minutes float64 `json:"minutes"`
}

// predictionKey buckets drafts by hour so nearby departure times share an
// entry.
func predictionKey(draft domain.TripDraft) string {
	return fmt.Sprintf("%s%s:%s:%s",
		predictionCachePrefix,
		draft.From.ID,
		draft.To.ID,
		draft.StartTime.UTC().Format("2006-01-02T15"),
	)
}

// GetPrediction retrieves a cached result for the draft. A cache miss
// returns (nil, nil).
func (s *CacheStore) GetPrediction(ctx context.Context, draft domain.TripDraft) (*domain.PredictionResult, error) {
	data, err := s.client.Get(ctx, predictionKey(draft)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedPrediction
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &domain.PredictionResult{Minutes: cached.Minutes}, nil
}

// SetPrediction stores an accepted result for the draft.
func (s *CacheStore) SetPrediction(ctx context.Context, draft domain.TripDraft, result domain.PredictionResult) error {
	data, err := json.Marshal(cachedPrediction{Minutes: result.Minutes})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, predictionKey(draft), data, PredictionCacheTTL).Err()
}
