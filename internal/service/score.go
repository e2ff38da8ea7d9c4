package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/seungHoon0422/Degururu/internal/model"
	"gorm.io/gorm"
)

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

type ScoreCreate struct {
	ScheduleID uint
	GameNo     int
	Score      int
}

type ScoreUpdate struct {
	GameNo *int
	Score  *int
}

// ScheduleStats aggregates every recorded score of one schedule. Average,
// Min and Max are null when the schedule has no scores yet.
type ScheduleStats struct {
	Average *float64 `json:"average"`
	Min     *int     `json:"min"`
	Max     *int     `json:"max"`
	Count   int64    `json:"count"`
}

// TrendEntry is one schedule's worth of the caller's scores.
type TrendEntry struct {
	ScheduleID uint      `json:"schedule_id"`
	StartsAt   time.Time `json:"starts_at"`
	Title      string    `json:"title"`
	Average    float64   `json:"average"`
	Highest    int       `json:"highest"`
}

func (s *ScoreService) ListBySchedule(scheduleID uint) ([]model.Score, error) {
	if err := s.ensureScheduleExists(s.db, scheduleID); err != nil {
		return nil, err
	}
	var scores []model.Score
	err := s.db.Where("schedule_id = ?", scheduleID).
		Order("user_id asc, game_no asc").Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// CreateForUser records a game score, overwriting an existing row for the
// same (schedule, user, game_no). The insert path leans on the composite
// unique index: a racing duplicate insert loses with a conflict, never a
// second row.
func (s *ScoreService) CreateForUser(scheduleID, userID uint, in ScoreCreate) (*model.Score, error) {
	if in.ScheduleID != scheduleID {
		return nil, fmt.Errorf("40002:schedule_id mismatch")
	}

	var row model.Score
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureScheduleExists(tx, scheduleID); err != nil {
			return err
		}

		err := tx.Where("schedule_id = ? AND user_id = ? AND game_no = ?",
			scheduleID, userID, in.GameNo).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = model.Score{
				ScheduleID: scheduleID,
				UserID:     userID,
				GameNo:     in.GameNo,
				Score:      in.Score,
			}
			if err := tx.Create(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("40903:score conflict")
				}
				// The schedule was checked above, so a violated foreign key
				// means the user row is gone.
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return fmt.Errorf("40401:user not found")
				}
				return err
			}
			return nil
		case err != nil:
			return err
		}

		row.Score = in.Score
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update modifies a score row; only the owner or an admin may do so.
// Changing game_no onto another existing row's triple is a conflict.
func (s *ScoreService) Update(scoreID, actorID uint, isAdmin bool, in ScoreUpdate) (*model.Score, error) {
	score, err := s.Get(scoreID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && score.UserID != actorID {
		return nil, fmt.Errorf("40301:not permitted")
	}

	if in.GameNo != nil {
		score.GameNo = *in.GameNo
	}
	if in.Score != nil {
		score.Score = *in.Score
	}
	if err := s.db.Save(score).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("40903:score conflict")
		}
		return nil, err
	}
	return score, nil
}

func (s *ScoreService) Delete(scoreID, actorID uint, isAdmin bool) error {
	score, err := s.Get(scoreID)
	if err != nil {
		return err
	}
	if !isAdmin && score.UserID != actorID {
		return fmt.Errorf("40301:not permitted")
	}
	return s.db.Delete(score).Error
}

func (s *ScoreService) Get(scoreID uint) (*model.Score, error) {
	var score model.Score
	if err := s.db.First(&score, scoreID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40403:score not found")
		}
		return nil, err
	}
	return &score, nil
}

func (s *ScoreService) ScheduleStats(scheduleID uint) (*ScheduleStats, error) {
	if err := s.ensureScheduleExists(s.db, scheduleID); err != nil {
		return nil, err
	}

	var agg struct {
		Average sql.NullFloat64
		Min     sql.NullInt64
		Max     sql.NullInt64
		Count   int64
	}
	err := s.db.Model(&model.Score{}).
		Select("AVG(score) AS average, MIN(score) AS min, MAX(score) AS max, COUNT(*) AS count").
		Where("schedule_id = ?", scheduleID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	stats := &ScheduleStats{Count: agg.Count}
	if agg.Average.Valid {
		v := agg.Average.Float64
		stats.Average = &v
	}
	if agg.Min.Valid {
		v := int(agg.Min.Int64)
		stats.Min = &v
	}
	if agg.Max.Valid {
		v := int(agg.Max.Int64)
		stats.Max = &v
	}
	return stats, nil
}

// Trend groups the user's scores by schedule, newest schedule first.
func (s *ScoreService) Trend(userID uint, limit int) ([]TrendEntry, error) {
	var entries []TrendEntry
	err := s.db.Model(&model.Score{}).
		Select("scores.schedule_id AS schedule_id, "+
			"AVG(scores.score) AS average, "+
			"MAX(scores.score) AS highest, "+
			"schedules.starts_at AS starts_at, "+
			"schedules.title AS title").
		Joins("JOIN schedules ON schedules.id = scores.schedule_id").
		Where("scores.user_id = ?", userID).
		Group("scores.schedule_id, schedules.starts_at, schedules.title").
		Order("schedules.starts_at DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AllTimeHigh returns the user's best score ever, 0 when none recorded.
func (s *ScoreService) AllTimeHigh(userID uint) (int, error) {
	var high sql.NullInt64
	err := s.db.Model(&model.Score{}).
		Select("MAX(score)").
		Where("user_id = ?", userID).
		Scan(&high).Error
	if err != nil {
		return 0, err
	}
	if !high.Valid {
		return 0, nil
	}
	return int(high.Int64), nil
}

func (s *ScoreService) ensureScheduleExists(tx *gorm.DB, scheduleID uint) error {
	var count int64
	if err := tx.Model(&model.Schedule{}).Where("id = ?", scheduleID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("40402:schedule not found")
	}
	return nil
}
