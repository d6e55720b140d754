package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio-content-api/internal/api"
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/metrics"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/service"
	"github.com/portfolio-content-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().
		Str("content_dir", cfg.Content.Dir).
		Str("source", cfg.Content.Source).
		Msg("Starting portfolio content API server...")

	if cfg.Content.EnsureDirs {
		if err := content.EnsureDirectories(cfg.Content.Dir); err != nil {
			log.Fatal().Err(err).Msg("Failed to create content directories")
		}
	}

	var source content.Source
	var repos *repository.Repositories

	if cfg.UsesDatabase() {
		// Initialize database
		db, err := database.New(context.Background(), &cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		// Run migrations
		if err := db.RunMigrations(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		// Start database pool metrics collector
		poolStats := metrics.NewPoolStatsCollector(db)
		poolStats.Start(15 * time.Second)
		defer poolStats.Stop()

		repos = repository.New(db)
		source = content.NewDatabaseSource(repos.Document)
	} else {
		fileSource := content.NewFileSource(cfg.Content.Dir, cfg.Content.Extension)
		source = fileSource

		// Report content problems once at startup; they never block serving
		auditCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		problems := service.NewAuditor(fileSource, log).Audit(auditCtx, nil)
		cancel()
		if len(problems) > 0 {
			log.Warn().Int("problems", len(problems)).Msg("Content audit found problems")
		}
	}

	// Initialize services
	var cache content.Cache = content.NewMemoryCache()
	if !cfg.Content.Cache {
		log.Warn().Msg("Content cache disabled; every request reads the source")
		cache = content.NopCache{}
	}
	loader := content.NewLoader(source, cache, log)
	lister := content.NewLister(source, log)
	services := service.NewServices(loader, lister, repos, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
