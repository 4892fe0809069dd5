package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gopredict/internal/domain"
	"gopredict/internal/middleware"
	"gopredict/internal/service"
)

// PredictHandler handles HTTP requests for travel-time predictions.
type PredictHandler struct {
	predictionService *service.PredictionService
	historyService    *service.HistoryService
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(predictionService *service.PredictionService, historyService *service.HistoryService) *PredictHandler {
	return &PredictHandler{
		predictionService: predictionService,
		historyService:    historyService,
	}
}

// LocationPayload is a location as sent by the client.
type LocationPayload struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// PredictRequest is the HTTP request for a prediction.
type PredictRequest struct {
	From          LocationPayload `json:"from"`
	To            LocationPayload `json:"to"`
	StartTime     string          `json:"start_time"`
	City          string          `json:"city"`
	ViewportWidth int             `json:"viewport_width"`
}

// PredictResponse is the HTTP response for a prediction.
type PredictResponse struct {
	Minutes       float64 `json:"minutes"`
	City          string  `json:"city"`
	RevealDelayMs int64   `json:"reveal_delay_ms"`
	TripID        string  `json:"trip_id,omitempty"`
}

// Predict handles POST /v1/predictions
func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrMissingRequiredField)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		respondError(c, service.ErrMissingRequiredField)
		return
	}

	draft := domain.TripDraft{
		From:      toLocation(req.From),
		To:        toLocation(req.To),
		StartTime: startTime,
	}

	// The active city follows the selected locations; an explicit city in
	// the request must still be a known one.
	if req.City != "" {
		city, ok := domain.ParseCity(req.City)
		if !ok {
			respondError(c, service.ErrInvalidCity)
			return
		}
		draft.City = city
	} else {
		draft.City = draft.From.City()
	}

	ownerID := middleware.OwnerID(c)

	outcome, err := h.predictionService.Predict(c.Request.Context(), ownerID, draft, req.ViewportWidth)
	if err != nil {
		respondError(c, err)
		return
	}

	response := PredictResponse{
		Minutes:       outcome.Result.Minutes,
		City:          string(draft.City),
		RevealDelayMs: outcome.RevealDelay.Milliseconds(),
	}

	// Signed-in predictions are recorded in the owner's trip history. A
	// failed save does not invalidate the prediction already shown.
	if ownerID != "" {
		if trip, err := h.historyService.SaveTrip(c.Request.Context(), ownerID, draft, outcome.Result); err == nil {
			response.TripID = trip.ID
		}
	}

	respondJSON(c, http.StatusOK, response)
}

func toLocation(p LocationPayload) domain.Location {
	return domain.Location{ID: p.ID, Name: p.Name, Lat: p.Lat, Lon: p.Lon}
}
