package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/handler"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"gorm.io/gorm"
)

type Deps struct {
	DB                  *gorm.DB
	JWTSecret           string
	CORSAllowOrigins    []string
	LoginLimiter        *middleware.LoginLimiter
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ScheduleHandler     *handler.ScheduleHandler
	AttendanceHandler   *handler.AttendanceHandler
	ScoreHandler        *handler.ScoreHandler
	AnnouncementHandler *handler.AnnouncementHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware(deps.CORSAllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public routes (no auth)
	login := api.Group("/auth")
	if deps.LoginLimiter != nil {
		login.Use(deps.LoginLimiter.Middleware())
	}
	{
		login.POST("/login", deps.AuthHandler.Login)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		// Auth
		authed.GET("/auth/me", deps.AuthHandler.Me)
		authed.POST("/auth/change-password", deps.AuthHandler.ChangePassword)

		// Profile (self)
		authed.GET("/profile", deps.UserHandler.GetProfile)
		authed.PATCH("/profile", deps.UserHandler.UpdateProfile)

		// Users (admin)
		users := authed.Group("/users")
		users.Use(middleware.RequireAdmin())
		{
			users.GET("", deps.UserHandler.List)
			users.POST("", deps.UserHandler.Create)
			users.GET("/:id", deps.UserHandler.Get)
			users.PATCH("/:id", deps.UserHandler.Update)
			users.DELETE("/:id", deps.UserHandler.Deactivate)
		}

		// Schedules
		schedules := authed.Group("/schedules")
		{
			schedules.GET("", deps.ScheduleHandler.List)
			schedules.POST("", middleware.RequireAdmin(), deps.ScheduleHandler.Create)
			schedules.GET("/:id", deps.ScheduleHandler.Get)
			schedules.PATCH("/:id", middleware.RequireAdmin(), deps.ScheduleHandler.Update)
			schedules.DELETE("/:id", middleware.RequireAdmin(), deps.ScheduleHandler.Cancel)

			// Attendance under schedules
			schedules.GET("/:id/attendance", deps.AttendanceHandler.ListBySchedule)
			schedules.PUT("/:id/attendance/me", deps.AttendanceHandler.UpsertMine)
			schedules.PUT("/:id/attendance/:user_id", middleware.RequireAdmin(), deps.AttendanceHandler.UpsertForUser)

			// Scores under schedules
			schedules.GET("/:id/scores", deps.ScoreHandler.ListBySchedule)
			schedules.POST("/:id/scores", deps.ScoreHandler.CreateMine)
			schedules.GET("/:id/stats", deps.ScoreHandler.ScheduleStats)
		}

		// Attendance (standalone)
		authed.GET("/attendance/me", deps.AttendanceHandler.ListMine)

		// Scores (standalone)
		scores := authed.Group("/scores")
		{
			scores.GET("/me/trend", deps.ScoreHandler.MyTrend)
			scores.GET("/me/high", deps.ScoreHandler.MyAllTimeHigh)
			scores.PATCH("/:id", deps.ScoreHandler.Update)
			scores.DELETE("/:id", deps.ScoreHandler.Delete)
		}

		// Announcements
		announcements := authed.Group("/announcements")
		{
			announcements.GET("", deps.AnnouncementHandler.List)
			announcements.POST("", middleware.RequireAdmin(), deps.AnnouncementHandler.Create)
			announcements.GET("/:id", deps.AnnouncementHandler.Get)
			announcements.PATCH("/:id", middleware.RequireAdmin(), deps.AnnouncementHandler.Update)
			announcements.DELETE("/:id", middleware.RequireAdmin(), deps.AnnouncementHandler.Delete)
		}
	}
}
