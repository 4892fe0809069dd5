package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gopredict/internal/domain"
	"gopredict/internal/middleware"
	"gopredict/internal/service"
)

// TripHandler handles HTTP requests for trip history.
type TripHandler struct {
	historyService *service.HistoryService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(historyService *service.HistoryService) *TripHandler {
	return &TripHandler{historyService: historyService}
}

// TripResponse is the HTTP representation of a trip record.
type TripResponse struct {
	TripID            string        `json:"trip_id"`
	CreatedAt         string        `json:"created_at,omitempty"`
	TravelDateTime    string        `json:"travel_date_time"`
	StartLocation     PlacePayload  `json:"start_location"`
	EndLocation       PlacePayload  `json:"end_location"`
	City              string        `json:"city"`
	PredictedDuration float64       `json:"predicted_duration"`
}

// PlacePayload is the location snapshot embedded in a trip.
type PlacePayload struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// CreateTripRequest is the HTTP request for recording a trip. Temporal
// fields are raw strings; an unparseable travel time is stored with the
// invalid marker rather than rejected.
type CreateTripRequest struct {
	TravelDateTime    string       `json:"travel_date_time"`
	StartLocation     PlacePayload `json:"start_location"`
	EndLocation       PlacePayload `json:"end_location"`
	City              string       `json:"city"`
	PredictedDuration float64      `json:"predicted_duration"`
}

// Create handles POST /v1/trips
func (h *TripHandler) Create(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrMissingRequiredField)
		return
	}

	raw := domain.RawTrip{
		TravelDateTime:    req.TravelDateTime,
		StartLocation:     domain.Place{Name: req.StartLocation.Name, Lat: req.StartLocation.Lat, Lon: req.StartLocation.Lon},
		EndLocation:       domain.Place{Name: req.EndLocation.Name, Lat: req.EndLocation.Lat, Lon: req.EndLocation.Lon},
		City:              domain.City(req.City),
		PredictedDuration: req.PredictedDuration,
	}

	trip, err := h.historyService.IngestTrip(c.Request.Context(), middleware.OwnerID(c), raw)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTripResponse(*trip))
}

// List handles GET /v1/trips
//
// Query parameters: city (all|new_york|san_francisco), start_date and
// end_date (YYYY-MM-DD, inclusive, independent), sort (a sort key) and
// direction (asc|desc). The response is the derived view: records with an
// invalid travel time never appear.
func (h *TripHandler) List(c *gin.Context) {
	filters := domain.FilterCriteria{
		City:      c.DefaultQuery("city", domain.CityFilterAll),
		StartDate: service.ParseTimestamp(c.Query("start_date")),
		EndDate:   service.ParseTimestamp(c.Query("end_date")),
	}

	if filters.City != domain.CityFilterAll {
		if _, ok := domain.ParseCity(filters.City); !ok {
			respondError(c, service.ErrInvalidCity)
			return
		}
	}

	spec := domain.SortSpec{
		Key:       domain.SortKey(c.Query("sort")),
		Direction: domain.SortDirection(c.DefaultQuery("direction", string(domain.SortAsc))),
	}

	trips, err := h.historyService.QueryTrips(c.Request.Context(), middleware.OwnerID(c), filters, spec)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, toTripResponse(trip))
	}

	respondJSON(c, http.StatusOK, response)
}

// RequestDelete handles POST /v1/trips/:id/delete-request
func (h *TripHandler) RequestDelete(c *gin.Context) {
	if err := h.historyService.RequestDeleteConfirm(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"pending_trip_id": c.Param("id")})
}

// CancelDelete handles POST /v1/trips/:id/delete-cancel
func (h *TripHandler) CancelDelete(c *gin.Context) {
	h.historyService.CancelDelete()
	respondJSON(c, http.StatusOK, gin.H{"pending_trip_id": ""})
}

// ConfirmDelete handles DELETE /v1/trips/:id
func (h *TripHandler) ConfirmDelete(c *gin.Context) {
	err := h.historyService.ConfirmDelete(c.Request.Context(), middleware.OwnerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"deleted_trip_id": c.Param("id")})
}

func toTripResponse(trip domain.Trip) TripResponse {
	response := TripResponse{
		TripID:            trip.ID,
		StartLocation:     PlacePayload{Name: trip.StartLocation.Name, Lat: trip.StartLocation.Lat, Lon: trip.StartLocation.Lon},
		EndLocation:       PlacePayload{Name: trip.EndLocation.Name, Lat: trip.EndLocation.Lat, Lon: trip.EndLocation.Lon},
		City:              string(trip.City),
		PredictedDuration: trip.PredictedDuration,
	}
	if !trip.CreatedAt.IsZero() {
		response.CreatedAt = trip.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if trip.HasValidTravelTime() {
		response.TravelDateTime = trip.TravelDateTime.Format("2006-01-02T15:04:05Z07:00")
	}
	return response
}
