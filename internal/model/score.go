package model

import (
	"time"
)

// Score is one bowling game result; a user may record several games per
// schedule, distinguished by GameNo, but never two rows for the same triple.
type Score struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ScheduleID uint      `gorm:"not null;uniqueIndex:idx_scores_schedule_user_game" json:"schedule_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_scores_schedule_user_game" json:"user_id"`
	GameNo     int       `gorm:"not null;default:1;uniqueIndex:idx_scores_schedule_user_game" json:"game_no"`
	Score      int       `gorm:"not null" json:"score"`
	CreatedAt  time.Time `json:"created_at"`

	Schedule *Schedule `gorm:"foreignKey:ScheduleID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Score) TableName() string { return "scores" }
