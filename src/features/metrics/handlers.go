package metrics

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the metrics feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new metrics handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetOverview returns the catalog totals as JSON.
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview(c.Context())
	if err != nil {
		slog.Error("Error loading metrics overview", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading metrics"})
	}

	return c.JSON(overview)
}
