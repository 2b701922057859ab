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

// TaskLifecycle drives the task state machine
type TaskLifecycle interface {
	List(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error)
	Get(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, actor domain.ActorContext, in domain.NewTaskInput) (*domain.Task, error)
	UpdateStatus(ctx context.Context, actor domain.ActorContext, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	Resolve(ctx context.Context, actor domain.ActorContext, taskID uuid.UUID, in service.ResolveTaskInput) (*domain.Task, error)
	GetHistory(ctx context.Context, taskID uuid.UUID) ([]domain.TaskHistory, error)
}

type TaskHandler struct {
	service TaskLifecycle
	logger  *slog.Logger
}

func NewTaskHandler(service TaskLifecycle, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

// List GET /api/tasks - all tasks, optionally filtered by status
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var status *domain.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.TaskStatus(raw)
		status = &s
	}

	tasks, err := h.service.List(c.Context(), status)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"tasks": tasks, "count": len(tasks)})
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Context(), taskID)
	if err != nil {
		return err
	}

	return c.JSON(task)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	var input domain.NewTaskInput
	if err := c.BodyParser(&input); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	task, err := h.service.Create(c.Context(), actor, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

type UpdateStatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

// UpdateStatus PUT /api/tasks/:id/status - pending/in_progress transitions
// and reopening; closing goes through Resolve
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	task, err := h.service.UpdateStatus(c.Context(), actor, taskID, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(task)
}

// Resolve PUT /api/tasks/:id/resolve - close a task with evidence
func (h *TaskHandler) Resolve(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	input := service.ResolveTaskInput{
		Description: strings.TrimSpace(c.FormValue("description")),
		LinkURL:     strings.TrimSpace(c.FormValue("link_url")),
	}
	if input.Photo, err = formAttachment(c, "photo"); err != nil {
		return err
	}
	if input.Document, err = formAttachment(c, "document"); err != nil {
		return err
	}

	task, err := h.service.Resolve(c.Context(), actor, taskID, input)
	if err != nil {
		return err
	}

	return c.JSON(task)
}

// History GET /api/tasks/:id/history - change log, newest first
func (h *TaskHandler) History(c *fiber.Ctx) error {
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	history, err := h.service.GetHistory(c.Context(), taskID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"history": history, "count": len(history)})
}
