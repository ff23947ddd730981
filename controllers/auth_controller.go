package controllers

import (
	"errors"
	"net/http"

	"InnerVoiceGo/config"
	"InnerVoiceGo/models"
	"InnerVoiceGo/services"
	"InnerVoiceGo/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct {
	accounts *services.AccountService
	sessions *services.SessionStore
}

func NewAuthController(accounts *services.AccountService, sessions *services.SessionStore) *AuthController {
	return &AuthController{accounts: accounts, sessions: sessions}
}

// Signup 注册新账号
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ac.accounts.CreateAccount(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
			return
		}
		config.Logger.Errorw("用户创建失败", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account."})
		return
	}

	config.Logger.Infow("用户创建成功", "userID", account.ID, "username", account.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Account created! Please log in."})
}

// Login 登录
// 若请求带会话ID，登录成功后把会话绑定到该用户并跳到 Home
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ac.accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// 用户不存在和密码错误统一提示
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
			return
		}
		config.Logger.Errorw("登录查询失败", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed."})
		return
	}

	token, err := utils.GenerateToken(account.ID, account.Username)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "error", err, "userID", account.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed."})
		return
	}

	// 绑定会话
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		if err := ac.sessions.BindUser(c.Request.Context(), sid, account.Username); err != nil {
			config.Logger.Errorw("会话绑定失败", "error", err, "sessionID", sid)
		}
	}

	config.Logger.Infow("用户登录成功", "userID", account.ID, "username", account.Username)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       account.ID,
			"username": account.Username,
		},
	})
}
