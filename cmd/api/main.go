// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AWLL-inc/work-management-sub003/internal/api/handlers"
	"github.com/AWLL-inc/work-management-sub003/internal/api/middleware"
	"github.com/AWLL-inc/work-management-sub003/internal/config"
	"github.com/AWLL-inc/work-management-sub003/internal/cron"
	"github.com/AWLL-inc/work-management-sub003/internal/db"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/seed"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("🔄 Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	pgDB, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer pgDB.Close()

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(pgDB.Pool)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional, login throttling)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without login throttling)", err)
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Println("⚡ Redis login throttling enabled")
		}
	}

	// ============================================
	// Seed Data (for development)
	// ============================================
	if !cfg.IsProduction() {
		log.Println("🌱 Seeding development data...")
		seed.SeedData(repos)
	}

	// ============================================
	// Initialize All Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Repos:  repos,
		Redis:  redisDB,
	})
	log.Println("✨ All services initialized")

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services, cfg)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(repos.UserRepo)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"database":  "connected",
			"redis":     getRedisStatus(redisDB),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.POST("/logout", h.Auth.Logout)
		}

		// ============================================
		// Protected routes (require auth middleware)
		// ============================================
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(services.Auth))
		{
			// User routes
			users := protected.Group("/users")
			{
				users.GET("/me", h.User.Me)
				users.GET("", h.User.List)
				users.GET("/:id", h.User.GetByID)
			}

			// Team routes
			teams := protected.Group("/teams")
			{
				teams.POST("", h.Team.Create)
				teams.GET("", h.Team.List)
				teams.GET("/:id", h.Team.GetByID)
				teams.PUT("/:id", h.Team.Update)
				teams.GET("/:id/members", h.Team.ListMembers)
				teams.POST("/:id/members", h.Team.AddMember)
				teams.PUT("/:id/members/:userId", h.Team.UpdateMemberRole)
				teams.DELETE("/:id/members/:userId", h.Team.RemoveMember)
			}

			// Catalog routes
			projects := protected.Group("/projects")
			{
				projects.GET("", h.Catalog.ListProjects)
				projects.POST("", h.Catalog.CreateProject)
			}
			categories := protected.Group("/categories")
			{
				categories.GET("", h.Catalog.ListCategories)
				categories.POST("", h.Catalog.CreateCategory)
			}

			// Work log routes; export precedes :id so gin routes it correctly
			workLogs := protected.Group("/work-logs")
			{
				workLogs.GET("", h.WorkLog.List)
				workLogs.POST("", h.WorkLog.Create)
				workLogs.GET("/export", h.WorkLog.Export)
				workLogs.PUT("/:id", h.WorkLog.Update)
				workLogs.DELETE("/:id", h.WorkLog.Delete)
			}

			// Dashboard routes
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/personal", h.Dashboard.Personal)
				dashboard.GET("/projects", h.Dashboard.Projects)
			}
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func getRedisStatus(redisDB *db.RedisDB) string {
	if redisDB != nil {
		return "connected"
	}
	return "disabled"
}
