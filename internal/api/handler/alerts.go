package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/service"
)

// AlertLifecycle drives the alert state machine
type AlertLifecycle interface {
	List(ctx context.Context, actor domain.ActorContext, filter domain.AlertFilter, wellID *uuid.UUID) ([]domain.Alert, error)
	Resolve(ctx context.Context, actor domain.ActorContext, alertID uuid.UUID, in service.ResolveAlertInput) (*domain.Alert, error)
	ResolveAll(ctx context.Context, actor domain.ActorContext, resolution string) (int64, error)
	Delete(ctx context.Context, actor domain.ActorContext, alertID uuid.UUID) error
	DeleteAllResolved(ctx context.Context, actor domain.ActorContext) (int64, error)
}

type AlertHandler struct {
	service AlertLifecycle
	logger  *slog.Logger
}

func NewAlertHandler(service AlertLifecycle, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{service: service, logger: logger}
}

// List GET /api/alerts - alerts of the actor's wells, filterable
func (h *AlertHandler) List(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	filter := domain.AlertFilter(c.Query("filter"))

	var wellID *uuid.UUID
	if raw := c.Query("pozo_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.ErrValidationFailed.WithError(err)
		}
		wellID = &id
	}

	alerts, err := h.service.List(c.Context(), actor, filter, wellID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"alerts": alerts, "count": len(alerts)})
}

// Resolve PUT /api/alerts/:id/resolve - close one alert with evidence
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	alertID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	input := service.ResolveAlertInput{
		Resolution: strings.TrimSpace(c.FormValue("resolution")),
	}
	if input.Photo, err = formAttachment(c, "photo"); err != nil {
		return err
	}
	if input.Document, err = formAttachment(c, "document"); err != nil {
		return err
	}

	alert, err := h.service.Resolve(c.Context(), actor, alertID, input)
	if err != nil {
		return err
	}

	return c.JSON(alert)
}

type ResolveAllRequest struct {
	Resolution string `json:"resolution"`
}

// ResolveAll PUT /api/alerts/resolve-all - close every unresolved alert
func (h *AlertHandler) ResolveAll(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	var req ResolveAllRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.ErrBadRequest.WithError(err)
		}
	}

	count, err := h.service.ResolveAll(c.Context(), actor, req.Resolution)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"resolved": count})
}

// Delete DELETE /api/alerts/:id - archive one alert and remove it
func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	alertID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), actor, alertID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteResolved DELETE /api/alerts/resolved - archive the resolved set
func (h *AlertHandler) DeleteResolved(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	count, err := h.service.DeleteAllResolved(c.Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"archived": count})
}
