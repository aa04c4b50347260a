package routes

import (
	"internal-task-api/internal/handlers"
	"internal-task-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	router := gin.Default()

	// CORS middleware (for frontend integration)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Public endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Internal Task System API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.POST("/token", handlers.IssueToken)

	// Everything else requires a bearer token
	protected := router.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/users", handlers.CreateUser)
		protected.GET("/users/me", handlers.GetMe)
		protected.GET("/users", handlers.GetAllUsers)

		protected.POST("/tasks", handlers.CreateTasks)
		protected.GET("/tasks", handlers.GetTasks)
		protected.PUT("/tasks/:id", handlers.UpdateTask)

		protected.POST("/reports", handlers.CreateReport)
		protected.GET("/reports", handlers.GetReports)

		protected.GET("/stats/dashboard", handlers.GetDashboardStats)

		protected.GET("/ws", handlers.WebSocketHandler)
	}

	return router
}
