package services

import (
	"strings"
	"time"

	"InnerVoiceGo/models"
	"InnerVoiceGo/utils"
	"gorm.io/gorm"
)

// JournalService 日记的存储操作
type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

// CreateEntry 创建日记，标题和正文都不能为空
func (s *JournalService) CreateEntry(username, title, content string, date time.Time) (*models.JournalEntry, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyJournalFields
	}

	entry := models.JournalEntry{
		ID:       utils.GenerateID(),
		Username: username,
		Date:     date,
		Title:    title,
		Content:  content,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries 按时间倒序返回该用户全部日记
func (s *JournalService) ListEntries(username string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := s.db.Where("username = ?", username).
		Order("date desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateContent 只更新正文，标题和创建时间保持不变
func (s *JournalService) UpdateContent(username, id, content string) (*models.JournalEntry, error) {
	result := s.db.Model(&models.JournalEntry{}).
		Where("id = ? AND username = ?", id, username).
		Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}

	// RowsAffected 为0可能是记录不存在，也可能是内容未变化，按查询结果区分
	var entry models.JournalEntry
	if err := s.db.Where("id = ? AND username = ?", id, username).First(&entry).Error; err != nil {
		return nil, ErrJournalNotFound
	}
	return &entry, nil
}

// DeleteEntry 按记录ID删除，限定在请求用户名下
func (s *JournalService) DeleteEntry(username, id string) error {
	result := s.db.Where("id = ? AND username = ?", id, username).
		Delete(&models.JournalEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJournalNotFound
	}
	return nil
}
