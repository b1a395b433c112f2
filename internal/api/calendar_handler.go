package api

import (
	"fmt"
	"net/http"
	"time"

	"alcyxob/training-client/internal/calendar"
	"alcyxob/training-client/internal/domain"
	"alcyxob/training-client/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	sync *service.SyncOrchestrator
}

func NewCalendarHandler(sync *service.SyncOrchestrator) *CalendarHandler {
	return &CalendarHandler{sync: sync}
}

// --- Request/Response Structs ---

type SelectDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type MonthRequest struct {
	Month int    `json:"month" binding:"required,min=1,max=12"`
	Date  string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type ScrollRequest struct {
	Offset    float64 `json:"offset" binding:"min=0"`
	PageWidth float64 `json:"pageWidth" binding:"required,gt=0"`
}

// UpdateResponse mirrors a pager transition plus the resulting views.
type UpdateResponse struct {
	Extended         string               `json:"extended,omitempty"`
	Reseek           bool                 `json:"reseek"`
	ReseekTo         int                  `json:"reseekTo,omitempty"`
	Settle           string               `json:"settle,omitempty"`
	Page             int                  `json:"page"`
	SelectionChanged bool                 `json:"selectionChanged"`
	Selection        calendar.Selection   `json:"selection"`
	Calendar         calendar.View        `json:"calendar"`
	Planning         service.PlanningView `json:"planning"`
}

// --- Handler Methods ---

func (h *CalendarHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.CalendarView())
}

// Select handles a tap on a day; plans for the day are loaded before answering.
func (h *CalendarHandler) Select(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	day, _ := domain.ParseDay(req.Date)

	up, err := h.sync.OnDateSelected(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mapUpdate(up))
}

func (h *CalendarHandler) NavigateMonth(c *gin.Context) {
	var req MonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	var explicit *domain.DayBucket
	if req.Date != "" {
		day, _ := domain.ParseDay(req.Date)
		explicit = &day
	}

	up, err := h.sync.OnMonthChanged(c.Request.Context(), time.Month(req.Month), explicit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mapUpdate(up))
}

// Jump handles the year picker.
func (h *CalendarHandler) Jump(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	day, _ := domain.ParseDay(req.Date)
	c.JSON(http.StatusOK, h.mapUpdate(h.sync.OnFullDateChanged(c.Request.Context(), day)))
}

func (h *CalendarHandler) Scroll(c *gin.Context) {
	var req ScrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	up, err := h.sync.OnScroll(calendar.ScrollEvent{Offset: req.Offset, PageWidth: req.PageWidth})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mapUpdate(up))
}

func (h *CalendarHandler) MomentumEnd(c *gin.Context) {
	var req ScrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	up, err := h.sync.OnMomentumScrollEnd(c.Request.Context(), calendar.ScrollEvent{Offset: req.Offset, PageWidth: req.PageWidth})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mapUpdate(up))
}

func (h *CalendarHandler) EndReached(c *gin.Context) {
	up, err := h.sync.OnEndReached()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mapUpdate(up))
}

func (h *CalendarHandler) mapUpdate(up calendar.Update) UpdateResponse {
	resp := UpdateResponse{
		Reseek:           up.Reseek,
		ReseekTo:         up.ReseekTo,
		Page:             up.Page,
		SelectionChanged: up.SelectionChanged,
		Selection:        up.Selection,
		Calendar:         h.sync.CalendarView(),
		Planning:         h.sync.PlanningView(),
	}
	switch up.Extended {
	case calendar.Forward:
		resp.Extended = "forward"
	case calendar.Backward:
		resp.Extended = "backward"
	}
	if up.Settle != calendar.Idle {
		resp.Settle = up.Settle.String()
	}
	return resp
}
