package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/seungHoon0422/Degururu/internal/model"
	"gorm.io/gorm"
)

type ScheduleService struct {
	db *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

type ScheduleCreate struct {
	Title    string
	StartsAt time.Time
	Location *string
	Notes    *string
}

type ScheduleUpdate struct {
	Title    *string
	StartsAt *time.Time
	Location *string
	Notes    *string
}

// List applies the inclusive starts_at range to the count and the page with
// the same query so totals stay consistent with page contents.
func (s *ScheduleService) List(page, pageSize int, startsFrom, startsTo *time.Time) ([]model.Schedule, int64, error) {
	query := s.db.Model(&model.Schedule{})
	if startsFrom != nil {
		query = query.Where("starts_at >= ?", *startsFrom)
	}
	if startsTo != nil {
		query = query.Where("starts_at <= ?", *startsTo)
	}

	var total int64
	query.Count(&total)

	var schedules []model.Schedule
	err := query.Order("starts_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&schedules).Error
	if err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

func (s *ScheduleService) Create(in ScheduleCreate, createdBy uint) (*model.Schedule, error) {
	schedule := model.Schedule{
		Title:     in.Title,
		StartsAt:  in.StartsAt,
		Location:  in.Location,
		Notes:     in.Notes,
		CreatedBy: &createdBy,
	}
	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) Get(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := s.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40402:schedule not found")
		}
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) Update(id uint, in ScheduleUpdate) (*model.Schedule, error) {
	schedule, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		schedule.Title = *in.Title
	}
	if in.StartsAt != nil {
		schedule.StartsAt = *in.StartsAt
	}
	if in.Location != nil {
		schedule.Location = in.Location
	}
	if in.Notes != nil {
		schedule.Notes = in.Notes
	}
	if err := s.db.Save(schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

// Cancel marks the schedule cancelled; attendance and scores are kept.
func (s *ScheduleService) Cancel(id uint) (*model.Schedule, error) {
	schedule, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(schedule).Update("is_cancelled", true).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}
