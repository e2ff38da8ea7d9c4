package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seungHoon0422/Degururu/internal/model"
	"github.com/seungHoon0422/Degururu/pkg/password"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserCreate struct {
	Email       string
	Password    string
	Name        string
	Role        string
	MemberType  *string
	Description *string
}

type UserUpdate struct {
	Name        *string
	Role        *string
	MemberType  *string
	Description *string
	IsActive    *bool
}

func (s *UserService) List(page, pageSize int) ([]model.User, int64, error) {
	var total int64
	s.db.Model(&model.User{}).Count(&total)

	var users []model.User
	err := s.db.Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Create(in UserCreate) (*model.User, error) {
	if err := validateRolePairing(in.Role, in.MemberType); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		MemberType:   in.MemberType,
		Description:  in.Description,
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40901:email already exists")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40401:user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uint, in UserUpdate) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = *in.Role
		// Promotion to ADMIN drops the member_type unless the payload also
		// sets one, which the pairing check below then rejects.
		if user.Role == model.RoleAdmin && in.MemberType == nil {
			user.MemberType = nil
		}
	}
	if in.MemberType != nil {
		user.MemberType = in.MemberType
	}
	if in.Description != nil {
		user.Description = in.Description
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := validateRolePairing(user.Role, user.MemberType); err != nil {
		return nil, err
	}

	if err := s.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40904:update conflict")
		}
		return nil, err
	}
	return user, nil
}

// Deactivate disables the account; rows referencing the user are kept.
func (s *UserService) Deactivate(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("is_active", false).Error
}

func (s *UserService) UpdateProfile(id uint, description *string) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if description != nil {
		user.Description = description
		if err := s.db.Model(user).Update("description", description).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func validateRolePairing(role string, memberType *string) error {
	if role == model.RoleMember && memberType == nil {
		return fmt.Errorf("40001:member_type is required when role=MEMBER")
	}
	if role == model.RoleAdmin && memberType != nil {
		return fmt.Errorf("40001:member_type must be null when role=ADMIN")
	}
	return nil
}
