package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aulanet/aulanet-backend/internal/config"
	"github.com/aulanet/aulanet-backend/internal/handler"
	"github.com/aulanet/aulanet-backend/internal/logger"
	"github.com/aulanet/aulanet-backend/internal/repository"
	"github.com/aulanet/aulanet-backend/internal/router"
	"github.com/aulanet/aulanet-backend/internal/service"
	"github.com/aulanet/aulanet-backend/internal/store"
	"github.com/aulanet/aulanet-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("data_dir", cfg.DataDir).
		Msg("Starting AulaNet Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Open Collection Store ─────────────────────────────────────────
	st, err := store.New(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data directory")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(st)
	assignmentRepo := repository.NewAssignmentRepository(st)
	gradeRepo := repository.NewGradeRepository(st)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService, log)
	assignmentService := service.NewAssignmentService(assignmentRepo, gradeRepo, log)
	gradeService := service.NewGradeService(gradeRepo, assignmentRepo, userRepo, log)
	reportService := service.NewReportService(userRepo, assignmentRepo, gradeRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(userService, authService),
		Assignment: handler.NewAssignmentHandler(assignmentService),
		Grade:      handler.NewGradeHandler(gradeService),
		Report:     handler.NewReportHandler(reportService),
		User:       handler.NewUserHandler(userService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
