package controllers

import (
	"errors"
	"net/http"

	"InnerVoiceGo/config"
	"InnerVoiceGo/models"
	"InnerVoiceGo/services"

	"github.com/gin-gonic/gin"
)

// ChatController 聊天控制器
// 回复由固定规则表生成，聊天记录只存在会话里，会话过期即丢失
type ChatController struct {
	chatbot  *services.ChatbotService
	sessions *services.SessionStore
}

func NewChatController(chatbot *services.ChatbotService, sessions *services.SessionStore) *ChatController {
	return &ChatController{chatbot: chatbot, sessions: sessions}
}

// SendMessage 处理一轮对话：生成回复并往会话追加两条记录
func (cc *ChatController) SendMessage(c *gin.Context) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required."})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := cc.chatbot.Respond(req.Message)

	session, err := cc.sessions.AppendChat(c.Request.Context(), sid, req.Message, reply)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found."})
			return
		}
		config.Logger.Errorw("聊天记录写入失败", "error", err, "sessionID", sid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record chat."})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Reply:   reply,
		History: session.ChatHistory,
	})
}

// GetHistory 返回当前会话的聊天记录
func (cc *ChatController) GetHistory(c *gin.Context) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required."})
		return
	}

	session, err := cc.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found."})
			return
		}
		config.Logger.Errorw("获取聊天记录失败", "error", err, "sessionID", sid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load chat history."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": session.ChatHistory})
}
