package model

import (
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"

	MemberTypeFull      = "FULL"
	MemberTypeAssociate = "ASSOCIATE"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Role         string     `gorm:"type:varchar(10);not null;index:idx_users_role" json:"role"`
	MemberType   *string    `gorm:"type:varchar(10)" json:"member_type"`
	Description  *string    `gorm:"type:text" json:"description"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
