package controllers

import (
	"errors"
	"net/http"

	"InnerVoiceGo/config"
	"InnerVoiceGo/models"
	"InnerVoiceGo/services"

	"github.com/gin-gonic/gin"
)

// EmotionController 情绪识别控制器
type EmotionController struct {
	capture *services.CaptureService
}

func NewEmotionController(capture *services.CaptureService) *EmotionController {
	return &EmotionController{capture: capture}
}

// DetectEmotion 执行一次完整的捕获和识别
// 每次用户操作只尝试一次，失败由用户重新发起
func (ec *EmotionController) DetectEmotion(c *gin.Context) {
	username := c.GetString("username")

	emotion, err := ec.capture.CaptureAndClassify(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCamera):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not access webcam. Please try again."})
		case errors.Is(err, services.ErrNoFaceDetected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No face or emotion could be clearly detected. Please try again."})
		case errors.Is(err, services.ErrNoEmotion):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No dominant emotion found. Try again with more facial expression."})
		default:
			config.Logger.Errorw("情绪识别失败", "error", err, "username", username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Emotion detection failed. Please try again."})
		}
		return
	}

	config.Logger.Infow("情绪识别成功", "username", username, "emotion", emotion)
	c.JSON(http.StatusOK, models.EmotionResponse{Emotion: emotion})
}
