package webhook

import (
	"context"
	"strconv"

	"catalog-sync/core/logger"
	"catalog-sync/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Event types delivered by the upstream platform.
const (
	EventProductSynced  = "product_synced"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

// Event is the upstream webhook payload.
type Event struct {
	Type string `json:"type"`
	Data struct {
		SyncProduct struct {
			ID int64 `json:"id"`
		} `json:"sync_product"`
	} `json:"data"`
}

// SyncService is the slice of the orchestrator the webhook needs.
type SyncService interface {
	SyncOne(ctx context.Context, syncID string) (*models.CatalogItem, error)
	Delete(ctx context.Context, syncID string) (*models.CatalogItem, error)
}

// Handler handles webhook deliveries from the upstream platform.
type Handler struct {
	service SyncService
	logger  *zap.Logger
}

// NewHandler creates a webhook handler.
func NewHandler(service SyncService, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/webhook", h.HandleEvent)
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleEvent dispatches one upstream change notification. Sync and update
// events trigger a single-item sync, delete events remove the item, and any
// other type is acknowledged as ignored.
func (h *Handler) HandleEvent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var event Event
	if err := c.BodyParser(&event); err != nil {
		l.Warn("malformed webhook payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed payload"})
	}
	if event.Type == "" {
		l.Warn("webhook payload has no event type")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing event type"})
	}

	syncID := strconv.FormatInt(event.Data.SyncProduct.ID, 10)
	l.Info("webhook event received", zap.String("type", event.Type), zap.String("sync_id", syncID))

	switch event.Type {
	case EventProductSynced, EventProductUpdated, EventProductDeleted:
		if event.Data.SyncProduct.ID == 0 {
			l.Warn("webhook payload has no sync product id", zap.String("type", event.Type))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing sync product id"})
		}
	}

	switch event.Type {
	case EventProductSynced, EventProductUpdated:
		item, err := h.service.SyncOne(c.Context(), syncID)
		if err != nil {
			l.Error("webhook sync failed", zap.String("sync_id", syncID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "synced", "record_id": item.RecordID})

	case EventProductDeleted:
		removed, err := h.service.Delete(c.Context(), syncID)
		if err != nil {
			l.Error("webhook delete failed", zap.String("sync_id", syncID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if removed == nil {
			return c.JSON(fiber.Map{"status": "not_found"})
		}
		return c.JSON(fiber.Map{"status": "deleted", "record_id": removed.RecordID})

	default:
		l.Info("webhook event ignored", zap.String("type", event.Type))
		return c.JSON(fiber.Map{"status": "ignored"})
	}
}
