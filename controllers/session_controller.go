package controllers

import (
	"errors"
	"net/http"

	"InnerVoiceGo/config"
	"InnerVoiceGo/models"
	"InnerVoiceGo/services"

	"github.com/gin-gonic/gin"
)

// SessionController 会话与页面导航控制器
type SessionController struct {
	sessions *services.SessionStore
}

func NewSessionController(sessions *services.SessionStore) *SessionController {
	return &SessionController{sessions: sessions}
}

// StartSession 新建会话，初始页面为 Welcome
func (sc *SessionController) StartSession(c *gin.Context) {
	session, err := sc.sessions.Create(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("会话创建失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session."})
		return
	}

	c.Header("X-Session-ID", session.ID)
	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"page":       session.Page,
	})
}

// GetPage 返回会话当前页面和可跳转的页面集合
func (sc *SessionController) GetPage(c *gin.Context) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required."})
		return
	}

	session, err := sc.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found."})
			return
		}
		config.Logger.Errorw("获取会话失败", "error", err, "sessionID", sid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load session."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  session.Page,
		"pages": models.AllowedPages(session.LoggedIn()),
	})
}

// Navigate 切换页面，未授权的页面直接拒绝
func (sc *SessionController) Navigate(c *gin.Context) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required."})
		return
	}

	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sc.sessions.Navigate(c.Request.Context(), sid, req.Page)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown page."})
		case errors.Is(err, services.ErrPageForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Page not available. Please log in first."})
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found."})
		default:
			config.Logger.Errorw("页面跳转失败", "error", err, "sessionID", sid, "page", req.Page)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not change page."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": session.Page})
}
