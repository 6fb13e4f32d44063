/*
Package main is the entry point for the Pinboard application.

It is responsible for loading configuration, initializing the global logging system,
connecting to PostgreSQL and applying migrations, starting the session manager,
setting up the HTTP server, and gracefully handling operating system interrupt
signals (SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pinboard/internal/app/db"
	"pinboard/internal/app/message"
	"pinboard/internal/app/session"
	"pinboard/internal/app/user"
	"pinboard/internal/configs"
	"pinboard/internal/handler"
	"pinboard/internal/pkg/logx"
	"pinboard/internal/pkg/metrics"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Bool("cookie_secure", cfg.CookieSecure).
		Msg("Configuration loaded successfully")

	if cfg.UsingDefaultSessionSecret() {
		logx.Warn("SESSION_SECRET is not set; using the insecure default. Override it in any real deployment.")
	}

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL and apply pending migrations
	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	// Initialize the stores and the session manager
	users := user.NewRegistry(pool)
	messages := message.NewRepository(pool)
	sessions := session.NewManager()

	m := metrics.New()
	m.RegisterSessionGauge(sessions.Count)

	// Setup HTTP server and routes
	deps := &handler.AppDeps{
		Config:   cfg,
		Users:    users,
		Messages: messages,
		Sessions: sessions,
		Metrics:  m,
	}
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Pinboard Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	sessions.Shutdown()

	logx.Info("Server gracefully stopped.")
}
