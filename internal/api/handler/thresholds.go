package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/domain"
)

// ThresholdProvider resolves and stores alerting limits
type ThresholdProvider interface {
	ForWell(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) (*domain.ThresholdConfig, error)
	Defaults(ctx context.Context, actor domain.ActorContext) (*domain.ThresholdConfig, error)
	SaveDefaults(ctx context.Context, actor domain.ActorContext, cfg domain.ThresholdConfig) (*domain.ThresholdConfig, error)
	SaveOverride(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID, cfg domain.ThresholdConfig) (*domain.ThresholdConfig, error)
}

type ThresholdHandler struct {
	service ThresholdProvider
	logger  *slog.Logger
}

func NewThresholdHandler(service ThresholdProvider, logger *slog.Logger) *ThresholdHandler {
	return &ThresholdHandler{service: service, logger: logger}
}

// Defaults GET /api/thresholds - the actor's global limits
func (h *ThresholdHandler) Defaults(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	cfg, err := h.service.Defaults(c.Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(cfg)
}

// SaveDefaults PUT /api/thresholds
func (h *ThresholdHandler) SaveDefaults(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	var cfg domain.ThresholdConfig
	if err := c.BodyParser(&cfg); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	saved, err := h.service.SaveDefaults(c.Context(), actor, cfg)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}

// ForWell GET /api/wells/:id/thresholds - the limits in effect for one well
func (h *ThresholdHandler) ForWell(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	wellID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	cfg, err := h.service.ForWell(c.Context(), actor, wellID)
	if err != nil {
		return err
	}

	return c.JSON(cfg)
}

// SaveForWell PUT /api/wells/:id/thresholds
func (h *ThresholdHandler) SaveForWell(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	wellID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var cfg domain.ThresholdConfig
	if err := c.BodyParser(&cfg); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	saved, err := h.service.SaveOverride(c.Context(), actor, wellID, cfg)
	if err != nil {
		return err
	}

	return c.JSON(saved)
}
