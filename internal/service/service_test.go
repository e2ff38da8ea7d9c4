package service

import (
	"testing"
	"time"

	"github.com/seungHoon0422/Degururu/internal/model"
	"github.com/seungHoon0422/Degururu/pkg/password"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the real models
// migrated. TranslateError is on, as in production, so unique-index
// violations surface as gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

// setupTestDBWithForeignKeys is setupTestDB with SQLite foreign-key
// enforcement switched on, matching MySQL's referential checks.
func setupTestDBWithForeignKeys(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
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
	schedule := &model.Schedule{
		Title:    title,
		StartsAt: startsAt,
	}
	if err := db.Create(schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return schedule
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
