// main.go
package main

import (
	"log"
	"os"
	"time"

	"ecomission/database"
	"ecomission/handlers"
	"ecomission/handlers/admin"
	"ecomission/middleware"

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

	// Initialize database and wire the engine. Both are fatal on failure:
	// a broken level table or badge catalog must never serve requests.
	database.InitDB()
	handlers.InitHandlers()

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

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

	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Get("/me", middleware.AuthMiddleware, handlers.GetCurrentUser)

	// Mission routes
	api.Get("/missions", handlers.GetMissions)
	api.Get("/missions/:id", handlers.GetMission)

	// Level table (public, read-only)
	api.Get("/levels", handlers.GetLevels)

	// Badge routes
	api.Get("/badges", handlers.GetBadgeCatalog)
	api.Get("/badges/mine", middleware.AuthMiddleware, handlers.GetMyBadges)

	// Submission routes
	submissionGroup := api.Group("/submissions")
	submissionGroup.Post("/", middleware.AuthMiddleware, handlers.SubmitMission)
	submissionGroup.Get("/mine", middleware.AuthMiddleware, handlers.GetMySubmissions)
	submissionGroup.Get("/pending", middleware.ReviewerAuthMiddleware, handlers.GetPendingSubmissions)
	submissionGroup.Post("/:id/review", middleware.ReviewerAuthMiddleware, handlers.ReviewSubmission)

	// Team routes
	teamGroup := api.Group("/teams")
	teamGroup.Use(middleware.AuthMiddleware)
	teamGroup.Post("/", handlers.CreateTeam)
	teamGroup.Get("/mine", handlers.GetMyTeam)
	teamGroup.Post("/join", handlers.JoinTeam)
	teamGroup.Post("/leave", handlers.LeaveTeam)
	teamGroup.Get("/:id", handlers.GetTeam)
	teamGroup.Get("/:id/activity", handlers.GetTeamActivity)
	teamGroup.Delete("/:id/members/:userId", handlers.RemoveMember)

	// Leaderboard routes
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Get("/teams", handlers.GetTeamLeaderboard)
	leaderboardGroup.Get("/users", handlers.GetUserLeaderboard)

	// Stats routes
	api.Get("/stats/me", middleware.AuthMiddleware, handlers.GetMyStats)
	api.Get("/stats/users/:id", middleware.AuthMiddleware, handlers.GetUserStats)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Put("/users/:id/role", admin.SetUserRole)
	adminGroup.Get("/missions", admin.GetMissions)
	adminGroup.Post("/missions", admin.CreateMission)
	adminGroup.Put("/missions/:id", admin.UpdateMission)
	adminGroup.Delete("/missions/:id", admin.DeactivateMission)
	adminGroup.Get("/badges", admin.GetBadges)
	adminGroup.Post("/badges", admin.CreateBadge)
	adminGroup.Put("/badges/:id", admin.UpdateBadge)

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
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))

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
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
