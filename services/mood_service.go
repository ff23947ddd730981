package services

import (
	"fmt"
	"time"

	"InnerVoiceGo/models"
	"InnerVoiceGo/utils"
	"gorm.io/gorm"
)

// MoodService 心情记录的存储操作
type MoodService struct {
	db *gorm.DB
}

func NewMoodService(db *gorm.DB) *MoodService {
	return &MoodService{db: db}
}

// LogMood 插入一条心情记录
func (s *MoodService) LogMood(username, mood string, date time.Time) (*models.MoodEntry, error) {
	if !models.IsValidMood(mood) {
		return nil, fmt.Errorf("未知的心情标签: %s", mood)
	}

	entry := models.MoodEntry{
		ID:       utils.GenerateID(),
		Username: username,
		Date:     date,
		Mood:     mood,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListMoods 按时间倒序返回该用户全部心情记录
func (s *MoodService) ListMoods(username string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := s.db.Where("username = ?", username).
		Order("date desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteMood 按记录ID删除，限定在请求用户名下
// 两条展示文本相同的记录ID不同，不会误删
func (s *MoodService) DeleteMood(username, id string) error {
	result := s.db.Where("id = ? AND username = ?", id, username).
		Delete(&models.MoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMoodNotFound
	}
	return nil
}
