package controllers

import (
	"errors"
	"net/http"
	"time"

	"InnerVoiceGo/config"
	"InnerVoiceGo/models"
	"InnerVoiceGo/services"

	"github.com/gin-gonic/gin"
)

// JournalController 日记控制器
type JournalController struct {
	journal *services.JournalService
}

func NewJournalController(journal *services.JournalService) *JournalController {
	return &JournalController{journal: journal}
}

// CreateEntry 保存日记，标题和正文为空时不落库
func (jc *JournalController) CreateEntry(c *gin.Context) {
	username := c.GetString("username")

	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := jc.journal.CreateEntry(username, req.Title, req.Content, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrEmptyJournalFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in both a title and your thoughts."})
			return
		}
		config.Logger.Errorw("日记保存失败", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save journal entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Journal entry saved!",
		"entry":   models.NewJournalResponse(*entry),
	})
}

// ListEntries 按时间倒序返回日记
func (jc *JournalController) ListEntries(c *gin.Context) {
	username := c.GetString("username")

	entries, err := jc.journal.ListEntries(username)
	if err != nil {
		config.Logger.Errorw("获取日记失败", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load journal."})
		return
	}

	responses := make([]models.JournalResponse, len(entries))
	for i, entry := range entries {
		responses[i] = models.NewJournalResponse(entry)
	}
	c.JSON(http.StatusOK, gin.H{"entries": responses})
}

// UpdateEntry 修改日记正文，标题和日期不变
func (jc *JournalController) UpdateEntry(c *gin.Context) {
	username := c.GetString("username")
	id := c.Param("id")

	var req models.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := jc.journal.UpdateContent(username, id, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found."})
			return
		}
		config.Logger.Errorw("日记更新失败", "error", err, "username", username, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update journal entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Journal entry updated!",
		"entry":   models.NewJournalResponse(*entry),
	})
}

// DeleteEntry 按记录ID删除日记
func (jc *JournalController) DeleteEntry(c *gin.Context) {
	username := c.GetString("username")
	id := c.Param("id")

	if err := jc.journal.DeleteEntry(username, id); err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found."})
			return
		}
		config.Logger.Errorw("删除日记失败", "error", err, "username", username, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete journal entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted!"})
}
