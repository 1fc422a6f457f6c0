package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portal-romeiro-server/config"
	"portal-romeiro-server/database"
	"portal-romeiro-server/jobs"
	"portal-romeiro-server/middleware"
	"portal-romeiro-server/realtime"
	"portal-romeiro-server/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database (runs migrations)
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Portal do Romeiro server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Updates hub feeds the SSE stream with content-change events
	updatesHub := realtime.NewHub()
	go updatesHub.Run()
	routes.SetUpdatesHub(updatesHub)

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Public content routes
		routes.RegisterContentRoutes(api)

		accommodationRoutes := api.Group("/accommodations")
		routes.RegisterAccommodationRoutes(accommodationRoutes, middleware.AuthMiddleware())

		businessRoutes := api.Group("/businesses")
		routes.RegisterBusinessRoutes(businessRoutes, middleware.AuthMiddleware())

		// Updates stream (SSE, public)
		api.GET("/updates/stream", realtime.StreamHandler(updatesHub))

		// Notification inbox (protected)
		notificationRoutes := api.Group("/notifications")
		notificationRoutes.Use(middleware.AuthMiddleware())
		routes.RegisterNotificationRoutes(notificationRoutes)

		// Admin authentication (no authentication required)
		adminAuth := api.Group("/admin/auth")
		adminAuth.Use(middleware.AuthRateLimitMiddleware())
		adminAuth.POST("/login", routes.AdminLogin)

		// Admin routes (protected with admin authentication)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AdminAuthMiddleware())
		{
			adminRoutes.GET("/auth/me", routes.GetCurrentAdmin)
			adminRoutes.GET("/dashboard/stats", routes.GetDashboardStats)

			routes.RegisterAdminContentRoutes(adminRoutes)
			routes.RegisterAdminAccommodationRoutes(adminRoutes)
			routes.RegisterAdminNotificationRoutes(adminRoutes)
		}
	}

	// Start background jobs
	broadcastJob := jobs.NewBroadcastJob()
	broadcastJob.Start()
	defer broadcastJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
