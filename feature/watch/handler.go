package watch

import (
	"availability-watcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the watch status.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the watch routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/watch")
	group.Get("/status", h.HandleStatus)
	group.Get("/results", h.HandleResults)
}

// HandleStatus returns the poller state and the last tick summary.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status := h.service.Status()
	logger.WithRayID(h.service.logger, c).Debug("Serving watch status",
		zap.String("state", status.State),
		zap.Uint64("ticks", status.Ticks))
	return c.JSON(status)
}

// HandleResults returns the per-date outcome of the last tick.
func (h *Handler) HandleResults(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"results": h.service.Results()})
}
