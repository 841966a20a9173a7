package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AnhTuano/CNTTK23M/internal/app/controllers"
	"github.com/AnhTuano/CNTTK23M/internal/middleware"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	documentController *controllers.DocumentController,
	memoryController *controllers.MemoryController,
	chatController *controllers.ChatController,
	notificationController *controllers.NotificationController,
	reportController *controllers.ReportController,
	badgeController *controllers.BadgeController,
	adminController *controllers.AdminController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
	maintenanceGate gin.HandlerFunc,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", authController.Login)
	v1.GET("/config", adminController.GetConfig)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Password change stays reachable during maintenance so members can
	// complete a forced reset.
	authenticated.PUT("/auth/password", authController.ChangePassword)

	// Everything below is gated while maintenance mode is on
	gated := authenticated.Group("")
	gated.Use(maintenanceGate)
	{
		users := gated.Group("/users")
		{
			users.GET("", userController.GetAll)
			users.GET("/:id", userController.GetByID)
			users.PUT("/me", userController.UpdateProfile)
			users.POST("", userController.Create)
			users.PUT("/:id/role", userController.UpdateRole)
			users.PUT("/:id/lock", userController.SetLocked)
			users.DELETE("/:id", userController.Delete)
			users.PUT("/:id/badges/:badgeId", badgeController.Award)
			users.DELETE("/:id/badges/:badgeId", badgeController.Revoke)
		}

		posts := gated.Group("/posts")
		{
			posts.GET("", postController.GetFeed)
			posts.GET("/:id", postController.GetByID)
			posts.POST("", postController.Create)
			posts.PUT("/:id", postController.Update)
			posts.DELETE("/:id", postController.Delete)
			posts.PUT("/:id/pin", postController.SetPinned)
			posts.POST("/:id/vote", postController.Vote)
			posts.POST("/:id/comments", postController.AddComment)
			posts.POST("/:id/poll/vote", postController.VotePoll)
		}

		documents := gated.Group("/documents")
		{
			documents.GET("", documentController.GetAll)
			documents.GET("/pending", documentController.GetPending)
			documents.POST("", documentController.Create)
			documents.PUT("/:id", documentController.Update)
			documents.DELETE("/:id", documentController.Delete)
			documents.PUT("/:id/approve", documentController.Approve)
			documents.DELETE("/:id/reject", documentController.Reject)
		}

		memories := gated.Group("/memories")
		{
			memories.GET("", memoryController.GetAll)
			memories.GET("/pending", memoryController.GetPending)
			memories.POST("", memoryController.Create)
			memories.DELETE("/:id", memoryController.Delete)
			memories.PUT("/:id/approve", memoryController.Approve)
			memories.DELETE("/:id/reject", memoryController.Reject)
			memories.POST("/:id/react", memoryController.React)
		}

		chat := gated.Group("/chat")
		{
			chat.GET("/rooms", chatController.GetRooms)
			chat.GET("/rooms/:id", chatController.GetRoom)
			chat.POST("/rooms/:id/messages", chatController.SendMessage)
			chat.GET("/rooms/:id/ws", wsHandler.HandleConnection)
		}

		notifications := gated.Group("/notifications")
		{
			notifications.GET("", notificationController.GetAll)
			notifications.GET("/unread", notificationController.UnreadCount)
			notifications.PUT("/read", notificationController.MarkAllRead)
		}

		reports := gated.Group("/reports")
		{
			reports.POST("", reportController.Create)
			reports.GET("/pending", reportController.GetPending)
			reports.PUT("/:id/resolve", reportController.Resolve)
		}

		badges := gated.Group("/badges")
		{
			badges.GET("", badgeController.GetAll)
			badges.POST("", badgeController.Create)
			badges.PUT("/:id", badgeController.Update)
			badges.DELETE("/:id", badgeController.Delete)
		}

		stats := gated.Group("/stats")
		{
			stats.GET("/leaderboard", adminController.Leaderboard)
			stats.GET("/birthdays", adminController.UpcomingBirthdays)
			stats.GET("/dashboard", adminController.Dashboard)
		}

		// Config update and backup stay admin gated in the services
		gated.PUT("/config", adminController.UpdateConfig)
		gated.GET("/backup/export", adminController.ExportBackup)
		gated.POST("/backup/restore", adminController.RestoreBackup)
	}
}
