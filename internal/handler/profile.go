package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gopredict/internal/domain"
	"gopredict/internal/middleware"
	"gopredict/internal/service"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileResponse is the HTTP representation of a profile.
type ProfileResponse struct {
	OwnerID     string `json:"owner_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
}

// UpdateProfileRequest carries a partial profile edit. Absent fields are
// left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ProfileResponse{
		OwnerID:     profile.OwnerID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Phone:       profile.Phone,
		Location:    profile.Location,
	})
}

// Update handles PUT /v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrEmptyProfileUpdate)
		return
	}

	update := domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Location:    req.Location,
	}

	if err := h.profileService.SaveProfile(c.Request.Context(), middleware.OwnerID(c), update); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"status": "updated"})
}
