package api

import (
	"fmt"
	"net/http"
	"strconv"

	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/service"
	"alcyxob/training-client/internal/state"

	"github.com/gin-gonic/gin"
)

type PlanningHandler struct {
	sync *service.SyncOrchestrator
}

func NewPlanningHandler(sync *service.SyncOrchestrator) *PlanningHandler {
	return &PlanningHandler{sync: sync}
}

// --- Request/Response Structs ---

type FilterRequest struct {
	Index *int `json:"index" binding:"required,min=0"`
}

// RecordRequest is a partial record update; absent fields are left untouched.
type RecordRequest struct {
	IsFinish *bool   `json:"isFinish"`
	Note     *string `json:"note" binding:"omitempty,max=2000"`
	Time     *string `json:"time" binding:"omitempty,max=32"`
}

type RecordResponse struct {
	Result   service.ApplyResult  `json:"result"`
	Planning service.PlanningView `json:"planning"`
}

// --- Handler Methods ---

func (h *PlanningHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.PlanningView())
}

func (h *PlanningHandler) Refresh(c *gin.Context) {
	if err := h.sync.RefreshPlan(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sync.PlanningView())
}

func (h *PlanningHandler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.sync.SelectPlanIndex(*req.Index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sync.PlanningView())
}

// Toggle flips the completion of a column.
func (h *PlanningHandler) Toggle(c *gin.Context) {
	key, ok := columnKeyFromPath(c)
	if !ok {
		return
	}
	res, err := h.sync.ToggleFinish(c.Request.Context(), key, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{Result: res, Planning: h.sync.PlanningView()})
}

// UpdateRecord applies a partial record change (note editor, time). The response is only
// sent once the backend acknowledged the write.
func (h *PlanningHandler) UpdateRecord(c *gin.Context) {
	key, ok := columnKeyFromPath(c)
	if !ok {
		return
	}
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	patch := domain.RecordPatch{IsFinish: req.IsFinish, Note: req.Note, Time: req.Time}
	if patch.IsEmpty() {
		abortWithError(c, http.StatusBadRequest, "Validation error: nothing to update")
		return
	}

	res, err := h.sync.ApplyRecord(c.Request.Context(), key, patch, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{Result: res, Planning: h.sync.PlanningView()})
}

func columnKeyFromPath(c *gin.Context) (state.ColumnKey, bool) {
	planID, err := strconv.ParseInt(c.Param("planId"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return state.ColumnKey{}, false
	}
	columnID, err := strconv.ParseInt(c.Param("columnId"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid column ID format")
		return state.ColumnKey{}, false
	}
	return state.ColumnKey{PlanID: planID, ColumnID: columnID}, true
}
