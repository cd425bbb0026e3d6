package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dfryer1193/autoblog/blog/application"
	"github.com/dfryer1193/autoblog/blog/persistence"
	"github.com/dfryer1193/autoblog/internal/middleware"
	"github.com/dfryer1193/autoblog/internal/rest"
	"github.com/dfryer1193/autoblog/shared/blob"
	"github.com/dfryer1193/autoblog/shared/db"
	"github.com/dfryer1193/autoblog/shared/db/postgres"
	"github.com/dfryer1193/autoblog/shared/logging"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort     = 8080
	sessionTTL      = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
)

func main() {
	// Best effort; deployments set real environment variables.
	_ = godotenv.Load()
	logging.Setup()

	resolver := db.NewConfigResolver()
	manager := db.NewConnectionManager(resolver, postgres.Open)
	defer func() {
		if err := manager.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database handle")
		}
	}()

	postRepo := persistence.NewPostRepository(manager)
	postService := application.NewPostService(postRepo, application.NewMarkdownRenderer())

	sessions := middleware.NewSessionStore(sessionTTL)
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	blobDir := os.Getenv("BLOB_DIR")
	blobStore := blob.NewDiskStore(blobDir, "/images")

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))

	rest.NewApi(
		router,
		rest.NewPostsHandler(postService, resolver),
		rest.NewAdminHandler(adminPassword, sessions),
		rest.NewUploadHandler(blobStore),
		rest.NewStatusHandler(resolver, manager, blobStore, adminPassword),
		sessions,
	)

	if blobDir != "" {
		router.Static("/images", blobDir)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port()),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

func port() int {
	raw := os.Getenv("PORT")
	if raw == "" {
		return defaultPort
	}

	var p int
	if _, err := fmt.Sscanf(raw, "%d", &p); err != nil || p <= 0 {
		log.Warn().Str("port", raw).Msg("Invalid PORT value; using default")
		return defaultPort
	}
	return p
}
