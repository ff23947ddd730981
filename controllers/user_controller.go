package controllers

import (
	"net/http"

	"InnerVoiceGo/config"
	"InnerVoiceGo/models"
	"InnerVoiceGo/services"

	"github.com/gin-gonic/gin"
)

// UserController 用户资料控制器
type UserController struct {
	accounts *services.AccountService
}

func NewUserController(accounts *services.AccountService) *UserController {
	return &UserController{accounts: accounts}
}

// GetUser 返回当前登录用户的资料
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	account, err := uc.accounts.GetByID(uid)
	if err != nil {
		config.Logger.Errorw("数据库查询失败", "error", err, "userID", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{
			ID:        account.ID,
			Username:  account.Username,
			CreatedAt: account.CreatedAt,
			LastLogin: account.LastLogin,
		},
	})
}
