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

	"bet-tracker/internal/config"
	"bet-tracker/internal/database"
	"bet-tracker/internal/handlers"
	"bet-tracker/internal/repository"
	"bet-tracker/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository
	betRepo := repository.NewBetRepository(database.GetDB())

	// Initialize services
	betService := services.NewBetService(betRepo)
	statsService := services.NewStatsService()
	viewService := services.NewViewService(statsService)
	emailParser := services.NewEmailParser()

	// Initialize handlers
	betHandler := handlers.NewBetHandler(betService, viewService)
	dashboardHandler := handlers.NewDashboardHandler(betService, viewService)
	importHandler := handlers.NewImportHandler(emailParser, betService)

	// Set up Gin router
	router := gin.Default()

	// CORS middleware for the local frontend
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173", // Vite dev server
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if cfg.App.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.App.FrontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.POST("/bets", betHandler.CreateBet)
		api.GET("/bets", betHandler.ListBets)
		api.GET("/bets/:id", betHandler.GetBet)
		api.POST("/bets/:id/settle", betHandler.SettleBet)

		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/history/weekly", dashboardHandler.GetWeeklyHistory)

		api.POST("/import/email", importHandler.ImportEmail)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)
		log.Printf("Dashboard: GET http://localhost:%s/api/dashboard", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
