package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/config"
	"github.com/seungHoon0422/Degururu/internal/handler"
	"github.com/seungHoon0422/Degururu/internal/middleware"
	"github.com/seungHoon0422/Degururu/internal/model"
	"github.com/seungHoon0422/Degururu/internal/router"
	"github.com/seungHoon0422/Degururu/internal/service"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured JSON logs
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Database. TranslateError maps driver integrity errors to
	// gorm.ErrDuplicatedKey so the services can turn them into conflicts.
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	userService := service.NewUserService(db)
	scheduleService := service.NewScheduleService(db)
	attendanceService := service.NewAttendanceService(db)
	scoreService := service.NewScoreService(db)
	announcementService := service.NewAnnouncementService(db)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)

	loginLimiter := middleware.NewLoginLimiter(cfg.Login.RatePerMinute, cfg.Login.Burst)
	defer loginLimiter.Stop()

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Setup routes
	router.Setup(r, router.Deps{
		DB:                  db,
		JWTSecret:           cfg.JWT.Secret,
		CORSAllowOrigins:    cfg.CORS.AllowOrigins,
		LoginLimiter:        loginLimiter,
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		ScheduleHandler:     scheduleHandler,
		AttendanceHandler:   attendanceHandler,
		ScoreHandler:        scoreHandler,
		AnnouncementHandler: announcementHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
