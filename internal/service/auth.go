package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seungHoon0422/Degururu/internal/model"
	jwtpkg "github.com/seungHoon0422/Degururu/pkg/jwt"
	"github.com/seungHoon0422/Degururu/pkg/password"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpire int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

// Login verifies credentials and issues a bearer token. The same error is
// returned for an unknown email and a wrong password.
func (s *AuthService) Login(email, plain string) (*model.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("40104:incorrect email or password")
		}
		return nil, "", time.Time{}, err
	}
	if !password.Verify(plain, user.PasswordHash) {
		return nil, "", time.Time{}, fmt.Errorf("40104:incorrect email or password")
	}
	if !user.IsActive {
		return nil, "", time.Time{}, fmt.Errorf("40302:inactive user")
	}

	now := time.Now().UTC()
	if err := s.db.Model(&user).Update("last_login_at", &now).Error; err != nil {
		return nil, "", time.Time{}, err
	}

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.Role, s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}
	return &user, token, expireAt, nil
}

func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("40401:user not found")
		}
		return err
	}
	if !password.Verify(current, user.PasswordHash) {
		return fmt.Errorf("40003:current password is incorrect")
	}
	hash, err := password.Hash(next)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password_hash", hash).Error
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40401:user not found")
		}
		return nil, err
	}
	return &user, nil
}
