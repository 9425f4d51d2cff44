package inventory

import (
	"errors"

	"inventory-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/sync", h.HandleSync)
	group.Get("/status", h.HandleStatus)
	group.Get("/probe/:id", h.HandleProbe)
}

// HandleSync runs one synchronous sync pass and returns its report.
// The dry_run query parameter plans without dispatching updates.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run")

	report, err := h.service.Run(c.Context(), dryRun)
	if err != nil {
		if errors.Is(err, ErrRunInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Sync pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleStatus returns the report of the most recent sync pass.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report := h.service.LastReport()
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no sync pass has run yet",
		})
	}
	return c.JSON(report)
}

// HandleProbe reports what a sync pass would decide for one product
// without applying anything.
func (h *Handler) HandleProbe(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Probe(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Probe failed", zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(result)
}
