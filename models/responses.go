package models

import "time"

// DateDisplayFormat 对外展示时间戳的格式
const DateDisplayFormat = "2006-01-02 15:04:05"

// MoodResponse 心情记录响应结构体
type MoodResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Mood string `json:"mood"`
}

// NewMoodResponse 由存储模型生成响应
func NewMoodResponse(entry MoodEntry) MoodResponse {
	return MoodResponse{
		ID:   entry.ID,
		Date: entry.Date.Format(DateDisplayFormat),
		Mood: entry.Mood,
	}
}

// JournalResponse 日记响应结构体
type JournalResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewJournalResponse 由存储模型生成响应
func NewJournalResponse(entry JournalEntry) JournalResponse {
	return JournalResponse{
		ID:      entry.ID,
		Date:    entry.Date.Format(DateDisplayFormat),
		Title:   entry.Title,
		Content: entry.Content,
	}
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// ChatResponse 聊天响应结构体
type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}

// EmotionResponse 情绪识别响应结构体
type EmotionResponse struct {
	Emotion string `json:"emotion"`
}
