package api

import (
	"fmt"
	"net/http"
	"net/url"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/service"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	sync *service.SyncOrchestrator
}

func NewCoachHandler(sync *service.SyncOrchestrator) *CoachHandler {
	return &CoachHandler{sync: sync}
}

// --- Request/Response Structs ---

type SelectCoachRequest struct {
	CoachID string `json:"coachId" binding:"required"`
}

type CoachResponse struct {
	ID        string `json:"id"`
	CoachID   int64  `json:"coachId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Initials  string `json:"initials"`
	Blocked   bool   `json:"blocked"`
	PhotoURL  string `json:"photoUrl,omitempty"` // only set when a photo is cached
}

type RosterResponse struct {
	Coaches   []CoachResponse `json:"coaches"`
	Selected  *CoachResponse  `json:"selected,omitempty"`
	IsLoading bool            `json:"isLoading"`
	Blocked   bool            `json:"blocked"`
}

// --- Handler Methods ---

func (h *CoachHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, MapRosterToResponse(h.sync.RosterView()))
}

func (h *CoachHandler) Refresh(c *gin.Context) {
	if err := h.sync.RefreshRoster(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapRosterToResponse(h.sync.RosterView()))
}

func (h *CoachHandler) Select(c *gin.Context) {
	var req SelectCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.sync.SelectCoach(c.Request.Context(), req.CoachID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapRosterToResponse(h.sync.RosterView()))
}

// Photo serves the cached, already resized coach photo.
func (h *CoachHandler) Photo(c *gin.Context) {
	photo, ok := h.sync.CoachPhoto(c.Param("coachId"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "No photo for this coach")
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Header("ETag", fmt.Sprintf("%q", photo.Descriptor))
	c.Data(http.StatusOK, photo.ContentType, photo.Data)
}

func MapRosterToResponse(v service.RosterView) RosterResponse {
	resp := RosterResponse{
		Coaches:   make([]CoachResponse, len(v.Coaches)),
		IsLoading: v.IsLoading,
		Blocked:   v.Blocked,
	}
	for i := range v.Coaches {
		resp.Coaches[i] = MapCoachToResponse(&v.Coaches[i])
	}
	if v.Selected != nil {
		sel := MapCoachToResponse(v.Selected)
		resp.Selected = &sel
	}
	return resp
}

func MapCoachToResponse(coach *domain.Coach) CoachResponse {
	resp := CoachResponse{
		ID:        coach.ID,
		CoachID:   coach.Profile.ID,
		FirstName: coach.Profile.FirstName,
		LastName:  coach.Profile.LastName,
		Email:     coach.Profile.Email,
		Initials:  coach.Profile.Initials(),
		Blocked:   coach.Blocked,
	}
	if coach.Profile.Photo != nil {
		resp.PhotoURL = "/api/v1/coaches/" + url.PathEscape(coach.ID) + "/photo"
	}
	return resp
}
