package model

import (
	"time"
)

type Schedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	StartsAt    time.Time `gorm:"not null;index:idx_schedules_starts_at" json:"starts_at"`
	Location    *string   `gorm:"type:varchar(200)" json:"location"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedBy   *uint     `json:"created_by"`
	IsCancelled bool      `gorm:"not null;default:false" json:"is_cancelled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Schedule) TableName() string { return "schedules" }
