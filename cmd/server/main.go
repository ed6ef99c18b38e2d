package main

import (
	"context"
	"net/http"
	"os"

	"github.com/petrosTsatsis/KilogBackend/internal/api"
	"github.com/petrosTsatsis/KilogBackend/internal/config"
	"github.com/petrosTsatsis/KilogBackend/internal/database"
	"github.com/petrosTsatsis/KilogBackend/internal/handler"
	"github.com/petrosTsatsis/KilogBackend/internal/logger"
	"github.com/petrosTsatsis/KilogBackend/internal/middleware"
	"github.com/petrosTsatsis/KilogBackend/internal/service"
	"github.com/petrosTsatsis/KilogBackend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	pool, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		logger.Error("Migration failed: %v", err)
		os.Exit(1)
	}

	// Stores
	exerciseStore := store.NewExerciseStore(pool)
	workoutStore := store.NewWorkoutStore(pool)
	analyticsStore := store.NewAnalyticsStore(pool)
	userStore := store.NewUserStore(pool)

	// Services
	exercises := service.NewExerciseService(exerciseStore)
	workouts := service.NewWorkoutService(workoutStore, exercises)
	analytics := service.NewAnalyticsService(analyticsStore)
	users := service.NewUserService(userStore)

	h := handler.New(exercises, workouts, analytics, users, cfg.WebhookSecret)

	// Initialize routes
	router := api.SetupRouter(h, middleware.Auth(users, cfg.JWTSecret))

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
