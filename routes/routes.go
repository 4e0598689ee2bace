package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/medflix-backend/controllers"
	"github.com/vnkhanh/medflix-backend/middleware"
	"github.com/vnkhanh/medflix-backend/ws"
	"gorm.io/gorm"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	// Duyệt môn học công khai, có token thì cá nhân hóa theo học kỳ
	api.GET("/subjects", middleware.OptionalAuthMiddleware(), middleware.DBMiddleware(db), controllers.BrowseSubjects)

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))

		// Hồ sơ
		user.GET("/me", controllers.GetMe)
		user.PATCH("/term", controllers.UpdateTerm)
		user.POST("/change-password", controllers.ChangePassword)

		// Nội dung học theo học kỳ của user
		user.GET("/dashboard", controllers.GetDashboard)
		user.GET("/subjects", controllers.GetMySubjects)
		user.GET("/subjects/:id", controllers.GetSubjectDetail)
		user.GET("/summaries/:id", controllers.GetSummaryDetail)
		user.GET("/search", controllers.SearchContent)

		// Tiến độ học
		user.POST("/summaries/:id/view", controllers.ViewSummary)
		user.POST("/summaries/:id/complete", controllers.CompleteSummary)
		user.DELETE("/summaries/:id/complete", controllers.UncompleteSummary)
		user.GET("/last-viewed", controllers.GetLastViewed)

		// Trắc nghiệm
		user.POST("/quiz/explain", controllers.ExplainQuizAnswer)

		// Khôi phục trạng thái điều hướng của client
		user.POST("/navigation/resolve", controllers.ResolveNavigation)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db), middleware.RequireRoles("admin"))

		// Quản lý môn học
		admin.POST("/subjects", controllers.CreateSubject)
		admin.GET("/subjects", controllers.GetSubjects)
		admin.GET("/subjects/:id", controllers.GetSubjectDetail)
		admin.PUT("/subjects/:id", controllers.UpdateSubject)
		admin.DELETE("/subjects/:id", controllers.DeleteSubject)
		admin.POST("/subjects/:id/image", controllers.UploadSubjectImage)

		// Quản lý bài tóm tắt
		admin.POST("/summaries", controllers.CreateSummary)
		admin.GET("/summaries/:id", controllers.GetSummaryDetail)
		admin.PUT("/summaries/:id", controllers.UpdateSummary)
		admin.DELETE("/summaries/:id", controllers.DeleteSummary)
		admin.POST("/summaries/:id/audio", controllers.UploadSummaryAudio)
		admin.POST("/summaries/:id/narration", controllers.GenerateSummaryNarration)

		// Quản lý tài liệu nguồn
		admin.POST("/documents", controllers.UploadDocument)
		admin.GET("/documents", controllers.GetDocuments)
		admin.GET("/documents/:id", controllers.GetDocumentDetail)
		admin.DELETE("/documents/:id", controllers.DeleteDocument)

		// Luồng AI
		admin.POST("/ai/enhance", controllers.EnhanceSummaryDraft)
		admin.POST("/summaries/:id/update-from-document", controllers.UpdateSummaryFromDocument)
		admin.POST("/summaries/:id/generate-quiz", controllers.GenerateSummaryQuiz)
	}

	// WebSocket theo dõi trạng thái sinh nội dung
	r.GET("/ws/summary/:id", ws.HandleSummaryWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
