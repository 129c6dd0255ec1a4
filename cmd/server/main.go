// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	authrouter "github.com/ashevelyov/matchboard/internal/auth/router"
	authservice "github.com/ashevelyov/matchboard/internal/auth/service"
	"github.com/ashevelyov/matchboard/internal/config"
	"github.com/ashevelyov/matchboard/internal/database/database"
	"github.com/ashevelyov/matchboard/internal/database/migrate"
	"github.com/ashevelyov/matchboard/internal/health"
	"github.com/ashevelyov/matchboard/internal/live"
	matchrouter "github.com/ashevelyov/matchboard/internal/match/router"
	"github.com/ashevelyov/matchboard/internal/middleware"
	"github.com/ashevelyov/matchboard/pkg/logger"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zlog.Fatalw("failed to run migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.Recovery(zlog))

	r.GET("/health", health.New(db, zlog).Check)

	hub := live.NewHub(zlog)
	r.GET("/matches/live/ws", hub.Handle)

	authSvc := authrouter.RegisterRoutes(r, db, authservice.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}, zlog)

	matchrouter.RegisterRoutes(r, db, hub, middleware.RequireAdmin(authSvc), zlog)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalw("server failed", "error", err)
		}
	}()

	waitForShutdown(srv, cfg.Server.ShutdownTimeout, zlog)
}

func waitForShutdown(srv *http.Server, timeout time.Duration, zlog *zap.SugaredLogger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Errorw("forced shutdown", "error", err)
	}
}
