package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"github.com/seungHoon0422/Degururu/internal/service"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GET /schedules
func (h *ScheduleHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)

	startsFrom, ok := parseTimeQuery(c, "starts_from")
	if !ok {
		return
	}
	startsTo, ok := parseTimeQuery(c, "starts_to")
	if !ok {
		return
	}

	schedules, total, err := h.scheduleService.List(page, pageSize, startsFrom, startsTo)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	SuccessPaged(c, schedules, total, page, pageSize)
}

// POST /schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req struct {
		Title    string    `json:"title" binding:"required,max=200"`
		StartsAt time.Time `json:"starts_at" binding:"required"`
		Location *string   `json:"location" binding:"omitempty,max=200"`
		Notes    *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	schedule, err := h.scheduleService.Create(service.ScheduleCreate{
		Title:    req.Title,
		StartsAt: req.StartsAt,
		Location: req.Location,
		Notes:    req.Notes,
	}, middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, schedule)
}

// GET /schedules/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.scheduleService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, schedule)
}

// PATCH /schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req struct {
		Title    *string    `json:"title" binding:"omitempty,min=1,max=200"`
		StartsAt *time.Time `json:"starts_at"`
		Location *string    `json:"location" binding:"omitempty,max=200"`
		Notes    *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	schedule, err := h.scheduleService.Update(parseID(c.Param("id")), service.ScheduleUpdate{
		Title:    req.Title,
		StartsAt: req.StartsAt,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, schedule)
}

// DELETE /schedules/:id marks the schedule cancelled rather than removing
// it; dependent attendance and score rows stay valid.
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	schedule, err := h.scheduleService.Cancel(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, schedule)
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		BadRequest(c, 40001, name+" must be RFC3339")
		return nil, false
	}
	return &t, true
}
