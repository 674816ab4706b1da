// main.go
package main

import (
	"log"
	"os"
	"time"

	"ecoverse/database"
	"ecoverse/handlers"
	"ecoverse/handlers/admin"
	"ecoverse/middleware"
	"ecoverse/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Preload the quiz question bank
	log.Printf("📚 Savollar yuklandi: %d ta", len(services.LoadQuestions()))

	// Start the midnight rollover scheduler
	services.InitResetScheduler()
	services.GetResetScheduler().Start()
	defer func() {
		if s := services.GetResetScheduler(); s != nil {
			s.Stop()
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// Auth routes with stricter rate limiting
	authGroup := app.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)

	// Task routes at their historical top-level paths
	app.Get("/get_today_tasks", middleware.AuthMiddleware, handlers.GetTodayTasks)
	app.Post("/complete_task/:id", middleware.AuthMiddleware, handlers.CompleteTask)

	// Quiz routes at their historical /ml prefix
	ml := app.Group("/ml", middleware.AuthMiddleware)
	ml.Get("/get_questions", handlers.GetQuestions)
	ml.Post("/submit_quiz", handlers.SubmitQuiz)

	// Shop routes at their historical top-level paths
	app.Post("/buy_item/:id", middleware.AuthMiddleware, handlers.BuyItem)
	app.Post("/buy_energy", middleware.AuthMiddleware, handlers.BuyEnergy)
	app.Post("/equip_item/:id", middleware.AuthMiddleware, handlers.EquipItem)
	app.Post("/unequip_item/:id", middleware.AuthMiddleware, handlers.UnequipItem)

	// API Routes
	api := app.Group("/api")

	// Task routes
	taskGroup := api.Group("/tasks")
	taskGroup.Use(middleware.AuthMiddleware)
	taskGroup.Get("/", handlers.GetTasks)
	taskGroup.Get("/today", handlers.GetTodayTasks)
	taskGroup.Post("/:id/complete", handlers.CompleteTask)

	// Quiz routes
	quizGroup := api.Group("/quiz")
	quizGroup.Use(middleware.AuthMiddleware)
	quizGroup.Get("/questions", handlers.GetQuestions)
	quizGroup.Post("/submit", handlers.SubmitQuiz)
	quizGroup.Get("/history", handlers.GetQuizHistory)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/stats", handlers.GetUserStats)
	userGroup.Get("/progress", handlers.GetDailyProgress)
	userGroup.Get("/inventory", handlers.GetInventory)

	// Shop routes
	shopGroup := api.Group("/shop")
	shopGroup.Use(middleware.AuthMiddleware)
	shopGroup.Get("/items", handlers.GetShopItems)
	shopGroup.Get("/energy-packs", handlers.GetEnergyPacks)
	shopGroup.Post("/items/:id/buy", handlers.BuyItem)
	shopGroup.Post("/energy/buy", handlers.BuyEnergy)
	shopGroup.Post("/inventory/:id/equip", handlers.EquipItem)
	shopGroup.Post("/inventory/:id/unequip", handlers.UnequipItem)

	// Notification routes
	notificationGroup := api.Group("/notifications")
	notificationGroup.Use(middleware.AuthMiddleware)
	notificationGroup.Get("/", handlers.GetNotifications)
	notificationGroup.Get("/unread-count", handlers.GetUnreadCount)
	notificationGroup.Post("/:id/read", handlers.MarkNotificationRead)
	notificationGroup.Post("/read-all", handlers.MarkAllNotificationsRead)

	// Public content routes
	api.Get("/news", handlers.GetNews)
	api.Get("/news/:id", handlers.GetNewsDetail)
	api.Get("/announcements", handlers.GetAnnouncements)
	api.Get("/leaderboard", handlers.GetLeaderboard)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)

	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminAuthMiddleware)
	adminProtected.Get("/verify", admin.VerifyToken)
	adminProtected.Get("/dashboard", admin.GetDashboard)
	adminProtected.Get("/users", admin.GetUsers)

	// Admin task management
	adminProtected.Get("/tasks", admin.GetTasks)
	adminProtected.Post("/tasks", admin.AddTask)
	adminProtected.Put("/tasks/:id", admin.UpdateTask)
	adminProtected.Post("/tasks/:id/toggle", admin.ToggleTask)
	adminProtected.Delete("/tasks/:id", admin.DeleteTask)

	// Admin shop management
	adminProtected.Get("/items", admin.GetItems)
	adminProtected.Post("/items", admin.AddItem)
	adminProtected.Put("/items/:id", admin.UpdateItem)
	adminProtected.Post("/items/:id/toggle", admin.ToggleItem)
	adminProtected.Delete("/items/:id", admin.DeleteItem)
	adminProtected.Get("/energy-packs", admin.GetAllEnergyPacks)
	adminProtected.Post("/energy-packs", admin.AddEnergyPack)
	adminProtected.Put("/energy-packs/:id", admin.UpdateEnergyPack)
	adminProtected.Delete("/energy-packs/:id", admin.DeleteEnergyPack)

	// Admin content management
	adminProtected.Get("/news", admin.GetNews)
	adminProtected.Post("/news", admin.AddNews)
	adminProtected.Put("/news/:id", admin.UpdateNews)
	adminProtected.Delete("/news/:id", admin.DeleteNews)
	adminProtected.Get("/announcements", admin.GetAnnouncements)
	adminProtected.Post("/announcements", admin.AddAnnouncement)
	adminProtected.Post("/announcements/:id/toggle", admin.ToggleAnnouncement)
	adminProtected.Delete("/announcements/:id", admin.DeleteAnnouncement)

	// Admin rotation controls
	adminProtected.Post("/generate-daily-tasks", admin.GenerateDailyTasks)
	adminProtected.Post("/daily-reset", admin.RunDailyReset)

	// Live unread-notification feed
	app.Get("/ws/notifications", handlers.WebSocketUpgrade, handlers.NotificationFeed)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🌐 WebSocket available at ws://localhost:%s/ws/notifications", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
