package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gopredict/internal/domain"
)

// NoticeType represents the type of user-facing notice.
type NoticeType string

const (
	NoticePredictionReady       NoticeType = "PREDICTION_READY"
	NoticePredictionUnavailable NoticeType = "PREDICTION_UNAVAILABLE"
	NoticeTripDeleted           NoticeType = "TRIP_DELETED"
	NoticeTripDeleteFailed      NoticeType = "TRIP_DELETE_FAILED"
)

// Notice is a message surfaced to a user.
type Notice struct {
	Type        NoticeType
	RecipientID string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService delivers user-facing notices. The current
// implementation logs them; a push/WebSocket channel would plug in here.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyPredictionReady tells the user a prediction was accepted.
func (s *NotificationService) NotifyPredictionReady(ctx context.Context, ownerID string, draft domain.TripDraft, result domain.PredictionResult) error {
	return s.send(ctx, Notice{
		Type:        NoticePredictionReady,
		RecipientID: ownerID,
		Message:     fmt.Sprintf("Predicted %.0f minutes from %s to %s", result.Minutes, draft.From.Name, draft.To.Name),
		Data: map[string]interface{}{
			"minutes": result.Minutes,
			"city":    draft.City,
		},
		CreatedAt: time.Now(),
	})
}

// NotifyPredictionUnavailable tells the user the prediction attempt failed.
// The message is deliberately generic; transport failures and malformed
// predictor payloads are indistinguishable to the user.
func (s *NotificationService) NotifyPredictionUnavailable(ctx context.Context, ownerID string) error {
	return s.send(ctx, Notice{
		Type:        NoticePredictionUnavailable,
		RecipientID: ownerID,
		Message:     "Unable to predict travel time. Please try again later.",
		CreatedAt:   time.Now(),
	})
}

// NotifyTripDeleted tells the user a trip was removed from their history.
func (s *NotificationService) NotifyTripDeleted(ctx context.Context, ownerID, tripID string) error {
	return s.send(ctx, Notice{
		Type:        NoticeTripDeleted,
		RecipientID: ownerID,
		Message:     "Trip removed from your history",
		Data:        map[string]interface{}{"trip_id": tripID},
		CreatedAt:   time.Now(),
	})
}

// NotifyTripDeleteFailed tells the user a delete attempt failed and the trip
// is still present.
func (s *NotificationService) NotifyTripDeleteFailed(ctx context.Context, ownerID, tripID string) error {
	return s.send(ctx, Notice{
		Type:        NoticeTripDeleteFailed,
		RecipientID: ownerID,
		Message:     "Failed to delete trip. Please try again.",
		Data:        map[string]interface{}{"trip_id": tripID},
		CreatedAt:   time.Now(),
	})
}

// send delivers a notice.
func (s *NotificationService) send(ctx context.Context, notice Notice) error {
	log.Printf("[NOTICE] Type=%s, Recipient=%s, Message=%s",
		notice.Type, notice.RecipientID, notice.Message)
	return nil
}
