package routes

import (
	"InnerVoiceGo/config"
	"InnerVoiceGo/controllers"
	"InnerVoiceGo/middleware"
	"InnerVoiceGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, capture *services.CaptureService, sessions *services.SessionStore) {
	accountService := services.NewAccountService(config.DB)
	moodService := services.NewMoodService(config.DB)
	journalService := services.NewJournalService(config.DB)
	chatbotService := services.NewChatbotService()

	authController := controllers.NewAuthController(accountService, sessions)
	sessionController := controllers.NewSessionController(sessions)
	moodController := controllers.NewMoodController(moodService)
	journalController := controllers.NewJournalController(journalService)
	chatController := controllers.NewChatController(chatbotService, sessions)
	emotionController := controllers.NewEmotionController(capture)
	userController := controllers.NewUserController(accountService)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/signup", authController.Signup)
		public.POST("/auth/login", authController.Login)
		public.POST("/session", sessionController.StartSession)
		public.GET("/session/page", sessionController.GetPage)
		public.PUT("/session/page", sessionController.Navigate)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 心情日历
		private.POST("/moods", moodController.LogMood)
		private.GET("/moods", moodController.ListMoods)
		private.DELETE("/moods/:id", moodController.DeleteMood)

		// 日记
		private.POST("/journal", journalController.CreateEntry)
		private.GET("/journal", journalController.ListEntries)
		private.PUT("/journal/:id", journalController.UpdateEntry)
		private.DELETE("/journal/:id", journalController.DeleteEntry)

		// 聊天与情绪识别
		private.POST("/chat", chatController.SendMessage)
		private.GET("/chat/history", chatController.GetHistory)
		private.POST("/emotion/detect", emotionController.DetectEmotion)

		// 用户资料
		private.GET("/user", userController.GetUser)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
