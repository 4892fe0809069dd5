package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gopredict/internal/domain"
	"gopredict/internal/service"
)

// PlannerHandler evaluates trip-planning selection transitions for the
// client. The selection itself lives on the client; the server applies the
// transition rules so that city consistency is enforced in one place.
type PlannerHandler struct{}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler() *PlannerHandler {
	return &PlannerHandler{}
}

// SelectionPayload mirrors the client's selection state.
type SelectionPayload struct {
	From       *LocationPayload `json:"from"`
	To         *LocationPayload `json:"to"`
	TravelDate string           `json:"travel_date"`
}

// SelectRequest applies one location pick to a selection.
type SelectRequest struct {
	Selection SelectionPayload `json:"selection"`
	Location  LocationPayload  `json:"location"`
}

// SelectResponse is the evaluated selection.
type SelectResponse struct {
	Selection  SelectionPayload `json:"selection"`
	ActiveCity string           `json:"active_city"`
	Warning    string           `json:"warning,omitempty"`
	CanPredict bool             `json:"can_predict"`
}

// sameLocationWarning is advisory: the selection is accepted anyway and the
// hard check happens at submit time.
const sameLocationWarning = "Start and End locations cannot be the same. Please select different locations."

// SelectFrom handles POST /v1/planner/from
func (h *PlannerHandler) SelectFrom(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Location.ID == "" {
		respondError(c, service.ErrMissingRequiredField)
		return
	}

	sel := toSelection(req.Selection)
	sel = service.SelectFrom(sel, toLocation(req.Location))

	respondJSON(c, http.StatusOK, toSelectResponse(sel, false))
}

// SelectTo handles POST /v1/planner/to
func (h *PlannerHandler) SelectTo(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Location.ID == "" {
		respondError(c, service.ErrMissingRequiredField)
		return
	}

	sel := toSelection(req.Selection)
	sel, warned := service.SelectTo(sel, toLocation(req.Location))

	respondJSON(c, http.StatusOK, toSelectResponse(sel, warned))
}

func toSelection(p SelectionPayload) service.Selection {
	sel := service.NewSelection()
	if p.From != nil {
		from := toLocation(*p.From)
		sel.From = &from
		sel.ActiveCity = from.City()
	}
	if p.To != nil {
		to := toLocation(*p.To)
		sel.To = &to
	}
	sel.TravelDate = service.ParseTimestamp(p.TravelDate)
	return sel
}

func toSelectResponse(sel service.Selection, warned bool) SelectResponse {
	resp := SelectResponse{
		ActiveCity: string(sel.ActiveCity),
		CanPredict: service.CanPredict(sel),
	}
	if warned {
		resp.Warning = sameLocationWarning
	}
	if sel.From != nil {
		p := fromLocation(*sel.From)
		resp.Selection.From = &p
	}
	if sel.To != nil {
		p := fromLocation(*sel.To)
		resp.Selection.To = &p
	}
	if !sel.TravelDate.IsZero() {
		resp.Selection.TravelDate = sel.TravelDate.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

func fromLocation(loc domain.Location) LocationPayload {
	return LocationPayload{ID: loc.ID, Name: loc.Name, Lat: loc.Lat, Lon: loc.Lon}
}
