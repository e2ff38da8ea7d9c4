package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"github.com/seungHoon0422/Degururu/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	users, total, err := h.userService.List(page, pageSize)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	SuccessPaged(c, users, total, page, pageSize)
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Email       string  `json:"email" binding:"required,email"`
		Password    string  `json:"password" binding:"required,min=8"`
		Name        string  `json:"name" binding:"required,max=100"`
		Role        string  `json:"role" binding:"required,oneof=ADMIN MEMBER"`
		MemberType  *string `json:"member_type" binding:"omitempty,oneof=FULL ASSOCIATE"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	user, err := h.userService.Create(service.UserCreate{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Role:        req.Role,
		MemberType:  req.MemberType,
		Description: req.Description,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, user)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
		Role        *string `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
		MemberType  *string `json:"member_type" binding:"omitempty,oneof=FULL ASSOCIATE"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	user, err := h.userService.Update(parseID(c.Param("id")), service.UserUpdate{
		Name:        req.Name,
		Role:        req.Role,
		MemberType:  req.MemberType,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// DELETE /users/:id
func (h *UserHandler) Deactivate(c *gin.Context) {
	if err := h.userService.Deactivate(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// GET /profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.Get(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// PATCH /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid payload: "+err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(middleware.GetCurrentUserID(c), req.Description)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}
