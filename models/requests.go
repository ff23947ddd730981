package models

// SignupRequest 注册请求结构体
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LogMoodRequest 记录心情请求结构体
type LogMoodRequest struct {
	Mood string `json:"mood" binding:"required"`
}

// CreateJournalRequest 创建日记请求结构体
type CreateJournalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateJournalRequest 修改日记请求结构体，只允许修改正文
type UpdateJournalRequest struct {
	Content string `json:"content" binding:"required"`
}

// ChatRequest 聊天请求结构体
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// NavigateRequest 页面跳转请求结构体
type NavigateRequest struct {
	Page string `json:"page" binding:"required"`
}
