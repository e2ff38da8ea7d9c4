package service

import (
	"errors"
	"fmt"

	"github.com/seungHoon0422/Degururu/internal/model"
	"gorm.io/gorm"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

type AttendanceUpsert struct {
	Status  string
	Comment *string
}

func (s *AttendanceService) ListBySchedule(scheduleID uint) ([]model.Attendance, error) {
	if err := s.ensureScheduleExists(s.db, scheduleID); err != nil {
		return nil, err
	}
	var rows []model.Attendance
	err := s.db.Where("schedule_id = ?", scheduleID).
		Order("updated_at desc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert sets the user's attendance for a schedule: overwrite the existing
// (schedule, user) row or insert a new one. Existence is not pre-checked as
// a guard; the unique index decides the loser of a concurrent first insert,
// which surfaces as a conflict after the transaction rolls back.
func (s *AttendanceService) Upsert(scheduleID, userID uint, in AttendanceUpsert) (*model.Attendance, error) {
	var row model.Attendance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureScheduleExists(tx, scheduleID); err != nil {
			return err
		}

		err := tx.Where("schedule_id = ? AND user_id = ?", scheduleID, userID).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = model.Attendance{
				ScheduleID: scheduleID,
				UserID:     userID,
				Status:     in.Status,
				Comment:    in.Comment,
			}
			if err := tx.Create(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("40902:attendance conflict")
				}
				// The schedule was checked above, so a violated foreign key
				// means the target user does not exist.
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return fmt.Errorf("40401:user not found")
				}
				return err
			}
			return nil
		case err != nil:
			return err
		}

		row.Status = in.Status
		row.Comment = in.Comment
		if err := tx.Save(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("40902:attendance conflict")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *AttendanceService) ListForUser(userID uint, page, pageSize int) ([]model.Attendance, int64, error) {
	var total int64
	s.db.Model(&model.Attendance{}).Where("user_id = ?", userID).Count(&total)

	var rows []model.Attendance
	err := s.db.Where("user_id = ?", userID).Order("updated_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *AttendanceService) ensureScheduleExists(tx *gorm.DB, scheduleID uint) error {
	var count int64
	if err := tx.Model(&model.Schedule{}).Where("id = ?", scheduleID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("40402:schedule not found")
	}
	return nil
}
