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

// MoodController 心情日历控制器
type MoodController struct {
	moods *services.MoodService
}

func NewMoodController(moods *services.MoodService) *MoodController {
	return &MoodController{moods: moods}
}

// LogMood 记录一条心情
func (mc *MoodController) LogMood(c *gin.Context) {
	username := c.GetString("username")

	var req models.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidMood(req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown mood label."})
		return
	}

	entry, err := mc.moods.LogMood(username, req.Mood, time.Now())
	if err != nil {
		config.Logger.Errorw("心情记录失败", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not log mood."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Mood logged!",
		"entry":   models.NewMoodResponse(*entry),
	})
}

// ListMoods 按时间倒序返回心情记录
func (mc *MoodController) ListMoods(c *gin.Context) {
	username := c.GetString("username")

	entries, err := mc.moods.ListMoods(username)
	if err != nil {
		config.Logger.Errorw("获取心情记录失败", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load mood log."})
		return
	}

	responses := make([]models.MoodResponse, len(entries))
	for i, entry := range entries {
		responses[i] = models.NewMoodResponse(entry)
	}
	c.JSON(http.StatusOK, gin.H{"entries": responses})
}

// DeleteMood 按记录ID删除一条心情
func (mc *MoodController) DeleteMood(c *gin.Context) {
	username := c.GetString("username")
	id := c.Param("id")

	if err := mc.moods.DeleteMood(username, id); err != nil {
		if errors.Is(err, services.ErrMoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mood entry not found."})
			return
		}
		config.Logger.Errorw("删除心情记录失败", "error", err, "username", username, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete mood entry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mood entry deleted!"})
}
