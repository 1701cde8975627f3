package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/okvist/trackshelf/src/features/config"
	"github.com/okvist/trackshelf/src/features/hosting"
	"github.com/okvist/trackshelf/src/features/library"
	"github.com/okvist/trackshelf/src/features/logging"
	"github.com/okvist/trackshelf/src/features/metrics"
	"github.com/okvist/trackshelf/src/features/playlists"
	"github.com/okvist/trackshelf/src/infra/database"
	"github.com/okvist/trackshelf/src/infra/watcher"
)

const configPath = "config.yaml"

func main() {
	// Load configuration
	cfgManager, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Create the database catalog
	db, err := database.NewSqliteCatalog(cfgManager.Get().Database.Path)
	if err != nil {
		log.Fatalf("failed to create catalog: %v", err)
	}

	libraryService := library.NewService(db, cfgManager)
	playlistsService := playlists.NewService(db, cfgManager)
	metricsService := metrics.NewService(db, db)
	collector := metrics.NewCatalogCollector(db, db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the media type vocabulary from config
	if err := libraryService.SeedMediaTypes(ctx, cfgManager.Get().Database.MediaTypes); err != nil {
		log.Fatalf("failed to seed media types: %v", err)
	}

	// Watch the config file so logger and paging changes apply without a restart
	configEvents := make(chan watcher.ConfigEvent, 1)
	configWatcher, err := watcher.NewWatcher(configEvents)
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
	} else if err := configWatcher.Start(ctx, configPath); err != nil {
		slog.Error("Failed to start config watcher", "error", err)
	} else {
		defer configWatcher.Stop()
		go func() {
			for range configEvents {
				reloaded, err := config.Load(configPath)
				if err != nil {
					slog.Error("Config reload failed, keeping current configuration", "error", err)
					continue
				}
				cfgManager.Update(reloaded.Get())
				slog.Info("Configuration reloaded from file", "path", configPath)
			}
		}()
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, libraryService, playlistsService, metricsService, collector)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
