package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindgym/internal/config"
	"mindgym/internal/database"
	"mindgym/internal/handlers"
	"mindgym/internal/repository"
	"mindgym/internal/security"
	"mindgym/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	unlockRepo := repository.NewUnlockRepository(db)

	// Initialize services
	profileService := service.NewProfileService(profileRepo, sessionRepo, achievementRepo, unlockRepo)
	badgeService := service.NewBadgeService(sessionRepo, achievementRepo)
	gameService := service.NewGameService(sessionRepo, unlockRepo, badgeService)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	reportService := service.NewReportService(profileRepo, sessionRepo, achievementRepo, emailService)

	tokenIssuer, err := security.NewTokenIssuer(cfg.TokenSecret, cfg.TokenDuration)
	if err != nil {
		log.Fatalf("Failed to initialize token issuer: %v", err)
	}
	rateLimiter := security.NewRateLimiter(10, time.Minute)

	// Initialize handlers
	middleware := handlers.NewMiddleware(tokenIssuer, rateLimiter)
	gameHandler := handlers.NewGameHandler()
	profileHandler := handlers.NewProfileHandler(profileService, tokenIssuer)
	sessionHandler := handlers.NewSessionHandler(gameService)
	statsHandler := handlers.NewStatsHandler(gameService)
	badgeHandler := handlers.NewBadgeHandler(badgeService)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handlers.Health)
	mux.HandleFunc("GET /api/games", gameHandler.List)

	// Profile lifecycle
	mux.HandleFunc("POST /api/profiles", middleware.RateLimit(profileHandler.Create))
	mux.HandleFunc("GET /api/profiles", profileHandler.List)
	mux.HandleFunc("GET /api/profiles/{id}", profileHandler.Get)
	mux.HandleFunc("PUT /api/profiles/{id}", middleware.RequireProfile(profileHandler.Update))
	mux.HandleFunc("DELETE /api/profiles/{id}", middleware.RequireProfile(profileHandler.Delete))
	mux.HandleFunc("POST /api/profiles/{id}/token", middleware.RateLimit(profileHandler.Token))
	mux.HandleFunc("PUT /api/profiles/{id}/pin", middleware.RequireProfile(profileHandler.SetPIN))
	mux.HandleFunc("POST /api/profiles/{id}/reset", middleware.RequireProfile(profileHandler.Reset))

	// Sessions and derived data
	mux.HandleFunc("POST /api/profiles/{id}/sessions", middleware.RequireProfile(sessionHandler.Create))
	mux.HandleFunc("GET /api/profiles/{id}/sessions", middleware.RequireProfile(sessionHandler.List))
	mux.HandleFunc("GET /api/profiles/{id}/stats", middleware.RequireProfile(statsHandler.Summary))
	mux.HandleFunc("GET /api/profiles/{id}/stats/{gameType}", middleware.RequireProfile(statsHandler.ForGame))
	mux.HandleFunc("GET /api/profiles/{id}/unlocks", middleware.RequireProfile(statsHandler.Unlocks))
	mux.HandleFunc("GET /api/profiles/{id}/badges", middleware.RequireProfile(badgeHandler.List))
	mux.HandleFunc("POST /api/profiles/{id}/badges/resync", middleware.RequireProfile(badgeHandler.Resync))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background weekly report loop
	if cfg.WeeklyReportEmail != "" {
		go sendWeeklyReports(reportService, cfg.WeeklyReportEmail)
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// sendWeeklyReports periodically emails a progress report for every profile
func sendWeeklyReports(reports *service.ReportService, toEmail string) {
	ticker := time.NewTicker(7 * 24 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := reports.SendWeeklyReports(ctx, toEmail); err != nil {
			log.Printf("Error sending weekly reports: %v", err)
		} else {
			log.Println("Weekly progress reports sent")
		}
		cancel()
	}
}
