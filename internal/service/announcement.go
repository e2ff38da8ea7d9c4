package service

import (
	"errors"
	"fmt"

	"github.com/seungHoon0422/Degururu/internal/model"
	"gorm.io/gorm"
)

type AnnouncementService struct {
	db *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

type AnnouncementCreate struct {
	Title    string
	Content  string
	IsPinned bool
}

type AnnouncementUpdate struct {
	Title    *string
	Content  *string
	IsPinned *bool
}

// List excludes soft-deleted rows from both the count and the page.
func (s *AnnouncementService) List(page, pageSize int) ([]model.Announcement, int64, error) {
	query := s.db.Model(&model.Announcement{}).Where("is_deleted = ?", false)

	var total int64
	query.Count(&total)

	var items []model.Announcement
	err := query.Order("is_pinned desc, created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *AnnouncementService) Create(authorID uint, in AnnouncementCreate) (*model.Announcement, error) {
	item := model.Announcement{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: authorID,
		IsPinned: in.IsPinned,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *AnnouncementService) Get(id uint) (*model.Announcement, error) {
	var item model.Announcement
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("40404:announcement not found")
		}
		return nil, err
	}
	if item.IsDeleted {
		return nil, fmt.Errorf("40404:announcement not found")
	}
	return &item, nil
}

func (s *AnnouncementService) Update(id uint, in AnnouncementUpdate) (*model.Announcement, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Content != nil {
		item.Content = *in.Content
	}
	if in.IsPinned != nil {
		item.IsPinned = *in.IsPinned
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete soft-deletes: the row stays but disappears from reads and counts.
func (s *AnnouncementService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Model(item).Update("is_deleted", true).Error
}
