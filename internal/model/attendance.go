package model

import (
	"time"
)

const (
	AttendanceUnknown = "UNKNOWN"
	AttendanceAttend  = "ATTEND"
	AttendanceAbsent  = "ABSENT"
)

// Attendance holds one row per (schedule, user); the composite unique index
// is the concurrency control for racing check-ins.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ScheduleID uint      `gorm:"not null;uniqueIndex:idx_attendance_schedule_user" json:"schedule_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_attendance_schedule_user" json:"user_id"`
	Status     string    `gorm:"type:varchar(10);not null" json:"status"`
	Comment    *string   `gorm:"type:varchar(300)" json:"comment"`
	UpdatedAt  time.Time `json:"updated_at"`

	Schedule *Schedule `gorm:"foreignKey:ScheduleID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Attendance) TableName() string { return "attendance" }
