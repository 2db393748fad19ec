package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/remaimber-it/quiz/internal/api"
	"github.com/remaimber-it/quiz/internal/infrastructure/config"
	"github.com/remaimber-it/quiz/internal/store"
)

// @title           Python Quiz API
// @version         1.0.0
// @description     REST API for Python beginner-level quiz questions

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stdout)

	// ── Dependencies ────────────────────────────────────────────────
	bank, err := store.LoadBank(context.Background(), cfg.BankSource)
	if err != nil {
		logger.Error("failed to load question bank", "source", cfg.BankSource, "error", err)
		os.Exit(1)
	}
	logger.Info("question bank loaded", "questions", bank.Len(), "source", cfg.BankSource)

	handler := api.NewHandler(bank, logger)

	// ── Routes ──────────────────────────────────────────────────────
	router := api.NewRouter(api.RouterConfig{
		Handler:     handler,
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
