package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seungHoon0422/Degururu/internal/handler"
	"github.com/seungHoon0422/Degururu/internal/model"
	"github.com/seungHoon0422/Degururu/internal/router"
	"github.com/seungHoon0422/Degururu/internal/service"
	jwtpkg "github.com/seungHoon0422/Degururu/pkg/jwt"
	"github.com/seungHoon0422/Degururu/pkg/password"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// setupAPI wires the production router against an in-memory database.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	router.Setup(r, router.Deps{
		DB:                  db,
		JWTSecret:           testSecret,
		AuthHandler:         handler.NewAuthHandler(service.NewAuthService(db, testSecret, 1)),
		UserHandler:         handler.NewUserHandler(service.NewUserService(db)),
		ScheduleHandler:     handler.NewScheduleHandler(service.NewScheduleService(db)),
		AttendanceHandler:   handler.NewAttendanceHandler(service.NewAttendanceService(db)),
		ScoreHandler:        handler.NewScoreHandler(service.NewScoreService(db)),
		AnnouncementHandler: handler.NewAnnouncementHandler(service.NewAnnouncementService(db)),
	})
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	hash, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		IsActive:     true,
	}
	if role == model.RoleMember {
		mt := model.MemberTypeFull
		user.MemberType = &mt
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedSchedule(t *testing.T, db *gorm.DB, title string, startsAt time.Time) *model.Schedule {
	t.Helper()
	schedule := &model.Schedule{Title: title, StartsAt: startsAt}
	if err := db.Create(schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return schedule
}

func tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(testSecret, user.ID, user.Role, 1)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return envelope.Data
}
