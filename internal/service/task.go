package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/repository"
	"github.com/andino-energia/wellwatch/internal/storage"
)

// ResolveTaskInput carries the mandatory description plus optional evidence
// attached when a task is closed.
type ResolveTaskInput struct {
	Description string
	LinkURL     string
	Photo       *Attachment
	Document    *Attachment
}

type TaskService struct {
	tasks    repository.TaskRepositoryInterface
	guard    WellAccessGuard
	uploader storage.Uploader
	logger   *slog.Logger
}

func NewTaskService(
	tasks repository.TaskRepositoryInterface,
	guard WellAccessGuard,
	uploader storage.Uploader,
	logger *slog.Logger,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		guard:    guard,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *TaskService) List(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error) {
	if status != nil && !status.Valid() {
		return nil, domain.ErrValidationFailed.WithError(fmt.Errorf("unknown task status: %s", *status))
	}
	return s.tasks.List(ctx, status)
}

func (s *TaskService) Get(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, taskID)
}

// Create registers a new pending task against one of the actor's wells. The
// actor becomes the assigner; the creation history record is written in the
// same transaction as the task row.
func (s *TaskService) Create(ctx context.Context, actor domain.ActorContext, in domain.NewTaskInput) (*domain.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	if err := s.guard.AssertWellAccess(ctx, actor, in.WellID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		WellID:      in.WellID,
		Assignee:    in.Assignee,
		Assigner:    actor.Email,
		DueDate:     in.DueDate,
		Critical:    in.Critical,
		Status:      domain.TaskStatusPending,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created", "task_id", task.ID, "well_id", task.WellID, "assignee", task.Assignee)
	return task, nil
}

// UpdateStatus moves a task between pending and in_progress, or reopens a
// resolved task back to pending. Closing a task goes through Resolve so the
// resolution evidence is never skipped. Only the assignee may transition.
func (s *TaskService) UpdateStatus(ctx context.Context, actor domain.ActorContext, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.ErrValidationFailed.WithError(fmt.Errorf("unknown task status: %s", status))
	}
	if status == domain.TaskStatusResolved {
		return nil, domain.ErrValidationFailed.WithError(errors.New("resolving a task requires a resolution"))
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Assignee != actor.Email {
		return nil, domain.ErrNotAssignee
	}
	if task.Status == status {
		return task, nil
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, &domain.TaskHistory{
		TaskID:        taskID,
		ChangeType:    domain.TaskChangeStatus,
		ActingUser:    actor.Email,
		PreviousValue: string(task.Status),
		NewValue:      string(status),
	})

	return s.tasks.GetByID(ctx, taskID)
}

// Resolve closes a task with a mandatory description and optional evidence.
// Only the assignee may resolve.
func (s *TaskService) Resolve(ctx context.Context, actor domain.ActorContext, taskID uuid.UUID, in ResolveTaskInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Assignee != actor.Email {
		return nil, domain.ErrNotAssignee
	}

	res := domain.TaskResolution{
		Description: in.Description,
		LinkURL:     in.LinkURL,
	}
	if err := res.Validate(); err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	if res.PhotoURL, err = uploadEvidence(ctx, s.uploader, taskID, in.Photo); err != nil {
		return nil, err
	}
	if res.DocumentURL, err = uploadEvidence(ctx, s.uploader, taskID, in.Document); err != nil {
		return nil, err
	}

	if err := s.tasks.UpdateResolution(ctx, taskID, res); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, &domain.TaskHistory{
		TaskID:        taskID,
		ChangeType:    domain.TaskChangeStatus,
		ActingUser:    actor.Email,
		PreviousValue: string(task.Status),
		NewValue:      string(domain.TaskStatusResolved),
	})

	return s.tasks.GetByID(ctx, taskID)
}

// GetHistory returns the task's change log, newest first.
func (s *TaskService) GetHistory(ctx context.Context, taskID uuid.UUID) ([]domain.TaskHistory, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.tasks.ListHistory(ctx, taskID)
}

// appendHistory records a change after the mutation committed. A failure here
// must not undo an already-applied transition, so it is logged and swallowed.
func (s *TaskService) appendHistory(ctx context.Context, h *domain.TaskHistory) {
	if err := s.tasks.AppendHistory(ctx, h); err != nil {
		s.logger.Warn("task history append failed", "task_id", h.TaskID, "error", err)
	}
}
