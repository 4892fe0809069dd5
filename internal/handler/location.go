package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gopredict/internal/domain"
	internalRedis "gopredict/internal/redis"
	"gopredict/internal/service"
)

// LocationHandler serves the location catalog.
type LocationHandler struct {
	catalog internalRedis.LocationCatalogInterface
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(catalog internalRedis.LocationCatalogInterface) *LocationHandler {
	return &LocationHandler{catalog: catalog}
}

// List handles GET /v1/locations
//
// The city query parameter is required: the catalog is always scoped to the
// active city. Optional lat/lon/radius_km narrow the result to nearby
// locations.
func (h *LocationHandler) List(c *gin.Context) {
	city, ok := domain.ParseCity(c.Query("city"))
	if !ok {
		respondError(c, service.ErrInvalidCity)
		return
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		radius, errRad := strconv.ParseFloat(c.DefaultQuery("radius_km", "5"), 64)
		if errLat != nil || errLon != nil || errRad != nil {
			respondError(c, service.ErrMissingRequiredField)
			return
		}

		locations, err := h.catalog.Nearby(c.Request.Context(), city, lat, lon, radius)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, toLocationResponses(locations))
		return
	}

	locations, err := h.catalog.ListByCity(c.Request.Context(), city)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toLocationResponses(locations))
}

func toLocationResponses(locations []domain.Location) []LocationPayload {
	response := make([]LocationPayload, 0, len(locations))
	for _, loc := range locations {
		response = append(response, fromLocation(loc))
	}
	return response
}
