package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/domain"
)

// WellReader exposes the actor's wells
type WellReader interface {
	List(ctx context.Context, actor domain.ActorContext) ([]domain.Well, error)
	Get(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) (*domain.Well, error)
	UpdateReadings(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID, readings domain.WellReadings) error
}

type WellHandler struct {
	service WellReader
	logger  *slog.Logger
}

func NewWellHandler(service WellReader, logger *slog.Logger) *WellHandler {
	return &WellHandler{service: service, logger: logger}
}

// List GET /api/wells
func (h *WellHandler) List(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	wells, err := h.service.List(c.Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"wells": wells, "count": len(wells)})
}

// Get GET /api/wells/:id
func (h *WellHandler) Get(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	wellID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	well, err := h.service.Get(c.Context(), actor, wellID)
	if err != nil {
		return err
	}

	return c.JSON(well)
}

// UpdateReadings PUT /api/wells/:id/readings
func (h *WellHandler) UpdateReadings(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	wellID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var readings domain.WellReadings
	if err := c.BodyParser(&readings); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	if err := h.service.UpdateReadings(c.Context(), actor, wellID, readings); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
