package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	configManager *Manager
}

// NewHandler creates a new handler for the config feature.
func NewHandler(configManager *Manager) *Handler {
	return &Handler{
		configManager: configManager,
	}
}

type updateSettingsRequest struct {
	Logger *Logger `json:"logger"`
	Paging *Paging `json:"paging"`
}

// UpdateSettings updates the runtime-tunable parts of the configuration.
// Server and database settings are preserved; changing those means a restart.
func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	slog.Info("Configuration update requested")

	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	currentConfig := h.configManager.Get()
	newConfig := *currentConfig
	if req.Logger != nil {
		newConfig.Logger = *req.Logger
	}
	if req.Paging != nil {
		if req.Paging.DefaultPageSize < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "default_page_size must be at least 1"})
		}
		newConfig.Paging = *req.Paging
	}

	h.configManager.Update(&newConfig)
	slog.Info("Configuration updated in memory")

	// Try to save to file (optional - may fail in containerized environments)
	if err := h.configManager.Save("config.yaml"); err != nil {
		slog.Warn("failed to save config to file (this is normal in containerized environments)", "error", err)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// GetConfig returns the current configuration in the requested format.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	slog.Debug("GetConfig handler called", "format", c.Query("fmt", "json"))
	format := c.Query("fmt", "yaml")

	switch format {
	case "yaml":
		c.Set("Content-Type", "text/yaml")
		return c.SendString(h.configManager.GetYAML())
	case "json":
		c.Set("Content-Type", "application/json")
		return c.SendString(h.configManager.GetJSON())
	default:
		return c.Status(fiber.StatusBadRequest).SendString("Invalid format. Use 'json' or 'yaml'")
	}
}

// DownloadDatabase serves the database file for download.
func (h *Handler) DownloadDatabase(c *fiber.Ctx) error {
	slog.Debug("DownloadDatabase handler called")

	config := h.configManager.Get()
	dbPath := config.Database.Path

	if dbPath == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Database path not configured")
	}

	filename := filepath.Base(dbPath)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Set("Content-Type", "application/octet-stream")

	return c.SendFile(dbPath)
}
