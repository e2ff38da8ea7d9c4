package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"github.com/seungHoon0422/Degururu/internal/service"
)

type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// GET /announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	items, total, err := h.announcementService.List(page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	SuccessPaged(c, items, total, page, pageSize)
}

// POST /announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req struct {
		Title    string `json:"title" binding:"required,max=200"`
		Content  string `json:"content" binding:"required"`
		IsPinned bool   `json:"is_pinned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	item, err := h.announcementService.Create(middleware.GetCurrentUserID(c), service.AnnouncementCreate{
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// GET /announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	item, err := h.announcementService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// PATCH /announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req struct {
		Title    *string `json:"title" binding:"omitempty,min=1,max=200"`
		Content  *string `json:"content" binding:"omitempty,min=1"`
		IsPinned *bool   `json:"is_pinned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	item, err := h.announcementService.Update(parseID(c.Param("id")), service.AnnouncementUpdate{
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// DELETE /announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcementService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}
