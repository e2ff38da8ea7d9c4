package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"github.com/seungHoon0422/Degururu/internal/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

type attendanceUpsertRequest struct {
	Status  string  `json:"status" binding:"required,oneof=UNKNOWN ATTEND ABSENT"`
	Comment *string `json:"comment" binding:"omitempty,max=300"`
}

// GET /schedules/:id/attendance
func (h *AttendanceHandler) ListBySchedule(c *gin.Context) {
	rows, err := h.attendanceService.ListBySchedule(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}

// PUT /schedules/:id/attendance/me
func (h *AttendanceHandler) UpsertMine(c *gin.Context) {
	h.upsert(c, middleware.GetCurrentUserID(c))
}

// PUT /schedules/:id/attendance/:user_id (admin)
func (h *AttendanceHandler) UpsertForUser(c *gin.Context) {
	h.upsert(c, parseID(c.Param("user_id")))
}

func (h *AttendanceHandler) upsert(c *gin.Context, userID uint) {
	var req attendanceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	row, err := h.attendanceService.Upsert(parseID(c.Param("id")), userID, service.AttendanceUpsert{
		Status:  req.Status,
		Comment: req.Comment,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, row)
}

// GET /attendance/me
func (h *AttendanceHandler) ListMine(c *gin.Context) {
	page, pageSize := parsePage(c)
	rows, total, err := h.attendanceService.ListForUser(middleware.GetCurrentUserID(c), page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	SuccessPaged(c, rows, total, page, pageSize)
}
