package hosting

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/okvist/trackshelf/src/features/config"
	"github.com/okvist/trackshelf/src/features/library"
	"github.com/okvist/trackshelf/src/features/metrics"
	"github.com/okvist/trackshelf/src/features/playlists"
	"github.com/okvist/trackshelf/src/music"
	"github.com/prometheus/client_golang/prometheus"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, libraryService *library.Service, playlistsService *playlists.Service, metricsService *metrics.Service, collector *metrics.CatalogCollector) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var depErr *music.HasDependentsError
			if errors.As(err, &depErr) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": depErr.Error()})
			}
			if errors.Is(err, music.ErrNoMediaTypes) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
			}
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
		AppName:               "Trackshelf",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(RequestIDMiddleware())
	app.Use(LogAllRequestsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	library.RegisterRoutes(app, libraryService)
	playlists.RegisterRoutes(app, playlistsService)
	config.RegisterRoutes(app, cfg)
	metrics.RegisterRoutes(app, metricsService, collector, prometheus.NewRegistry())

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
