package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/domain"
)

// ReportBuilder assembles historical series reports
type ReportBuilder interface {
	Build(ctx context.Context, actor domain.ActorContext, req domain.ReportRequest) (*domain.Report, error)
	ExportXLSX(ctx context.Context, actor domain.ActorContext, req domain.ReportRequest) ([]byte, string, error)
}

type ReportHandler struct {
	service ReportBuilder
	logger  *slog.Logger
}

func NewReportHandler(service ReportBuilder, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{service: service, logger: logger}
}

// Build POST /api/reportes - series plus aggregates for the chart
func (h *ReportHandler) Build(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	var req domain.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	report, err := h.service.Build(c.Context(), actor, req)
	if err != nil {
		return err
	}

	return c.JSON(report)
}

// Export GET /api/reportes/export - the same report as a spreadsheet
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	req, err := reportRequestFromQuery(c)
	if err != nil {
		return err
	}

	data, filename, err := h.service.ExportXLSX(c.Context(), actor, req)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func reportRequestFromQuery(c *fiber.Ctx) (domain.ReportRequest, error) {
	var req domain.ReportRequest

	wellID, err := uuid.Parse(c.Query("pozo_id"))
	if err != nil {
		return req, domain.ErrValidationFailed.WithError(err)
	}

	start, err := time.Parse(time.RFC3339, c.Query("fecha_inicio"))
	if err != nil {
		return req, domain.ErrValidationFailed.WithError(err)
	}

	end, err := time.Parse(time.RFC3339, c.Query("fecha_fin"))
	if err != nil {
		return req, domain.ErrValidationFailed.WithError(err)
	}

	req.WellID = wellID
	req.StartDate = start
	req.EndDate = end
	req.Parameter = c.Query("parametro")
	return req, nil
}
