package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"github.com/seungHoon0422/Degururu/internal/service"
)

type ScoreHandler struct {
	scoreService *service.ScoreService
}

func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// GET /schedules/:id/scores
func (h *ScoreHandler) ListBySchedule(c *gin.Context) {
	scores, err := h.scoreService.ListBySchedule(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, scores)
}

// POST /schedules/:id/scores records the caller's own score. The payload
// schedule_id must match the path.
func (h *ScoreHandler) CreateMine(c *gin.Context) {
	var req struct {
		ScheduleID uint `json:"schedule_id" binding:"required"`
		GameNo     int  `json:"game_no" binding:"omitempty,min=1"`
		Score      *int `json:"score" binding:"required,min=0,max=300"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}
	if req.GameNo == 0 {
		req.GameNo = 1
	}

	score, err := h.scoreService.CreateForUser(parseID(c.Param("id")), middleware.GetCurrentUserID(c), service.ScoreCreate{
		ScheduleID: req.ScheduleID,
		GameNo:     req.GameNo,
		Score:      *req.Score,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, score)
}

// PATCH /scores/:id (owner or admin)
func (h *ScoreHandler) Update(c *gin.Context) {
	var req struct {
		GameNo *int `json:"game_no" binding:"omitempty,min=1"`
		Score  *int `json:"score" binding:"omitempty,min=0,max=300"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	user := middleware.GetCurrentUser(c)
	score, err := h.scoreService.Update(parseID(c.Param("id")), user.ID, user.IsAdmin(), service.ScoreUpdate{
		GameNo: req.GameNo,
		Score:  req.Score,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, score)
}

// DELETE /scores/:id (owner or admin)
func (h *ScoreHandler) Delete(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if err := h.scoreService.Delete(parseID(c.Param("id")), user.ID, user.IsAdmin()); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// GET /schedules/:id/stats
func (h *ScoreHandler) ScheduleStats(c *gin.Context) {
	stats, err := h.scoreService.ScheduleStats(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, stats)
}

// GET /scores/me/trend
func (h *ScoreHandler) MyTrend(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		BadRequest(c, 40001, "limit must be between 1 and 200")
		return
	}

	entries, err := h.scoreService.Trend(middleware.GetCurrentUserID(c), limit)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, entries)
}

// GET /scores/me/high
func (h *ScoreHandler) MyAllTimeHigh(c *gin.Context) {
	high, err := h.scoreService.AllTimeHigh(middleware.GetCurrentUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"highest": high})
}
