package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/service"
)

// SimulationRunner generates readings and runs the threshold checks
type SimulationRunner interface {
	SimulateWell(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) (bool, error)
	SimulateAll(ctx context.Context, actor domain.ActorContext) (*service.SimulationResult, error)
	SetEnabled(ctx context.Context, actor domain.ActorContext, enabled bool) error
}

type SimulationHandler struct {
	service SimulationRunner
	logger  *slog.Logger
}

func NewSimulationHandler(service SimulationRunner, logger *slog.Logger) *SimulationHandler {
	return &SimulationHandler{service: service, logger: logger}
}

// SimulateWell POST /api/wells/:id/simulate
func (h *SimulationHandler) SimulateWell(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	wellID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	simulated, err := h.service.SimulateWell(c.Context(), actor, wellID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"simulated": simulated})
}

// SimulateAll POST /api/simulate - run over every assigned well
func (h *SimulationHandler) SimulateAll(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.SimulateAll(c.Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// SetEnabled PUT /api/simulation - toggle the actor's simulation flag
func (h *SimulationHandler) SetEnabled(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	var req SetEnabledRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	if err := h.service.SetEnabled(c.Context(), actor, req.Enabled); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"enabled": req.Enabled})
}
