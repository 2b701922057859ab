package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
)

// WellRepositoryInterface defines operations for well data access, including
// the stored-procedure calls for simulation and authorization.
type WellRepositoryInterface interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Well, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Well, error)
	UpdateReadings(ctx context.Context, id uuid.UUID, readings domain.WellReadings) error
	IsAssigned(ctx context.Context, wellID, userID uuid.UUID) (bool, error)
	UserWellIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	SimulateReadings(ctx context.Context, wellID uuid.UUID) error
	CheckThresholds(ctx context.Context, wellID, userID uuid.UUID) (int, error)
}

// AlertRepositoryInterface defines operations for alert data access
type AlertRepositoryInterface interface {
	ListForUser(ctx context.Context, userID uuid.UUID, filter domain.AlertFilter, wellID *uuid.UUID) ([]domain.Alert, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	Resolve(ctx context.Context, id uuid.UUID, resolution, photoURL, documentURL string) error
	ResolveAllForUser(ctx context.Context, userID uuid.UUID, resolution string) (int64, error)
	ArchiveAndDelete(ctx context.Context, id uuid.UUID) error
	ArchiveAllResolvedForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// TaskRepositoryInterface defines operations for task data access
type TaskRepositoryInterface interface {
	List(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error
	UpdateResolution(ctx context.Context, id uuid.UUID, res domain.TaskResolution) error
	AppendHistory(ctx context.Context, h *domain.TaskHistory) error
	ListHistory(ctx context.Context, taskID uuid.UUID) ([]domain.TaskHistory, error)
}

// ThresholdRepositoryInterface defines operations for threshold configuration
type ThresholdRepositoryInterface interface {
	GetEffective(ctx context.Context, userID, wellID uuid.UUID) (*domain.ThresholdConfig, error)
	GetDefaults(ctx context.Context, userID uuid.UUID) (*domain.ThresholdConfig, error)
	Upsert(ctx context.Context, cfg *domain.ThresholdConfig) error
}

// UserRepositoryInterface defines operations for user accounts
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetSimulationEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
}

// ReportRepositoryInterface defines read access to the historical series
type ReportRepositoryInterface interface {
	WellName(ctx context.Context, wellID uuid.UUID) (string, error)
	Series(ctx context.Context, wellID uuid.UUID, parameter string, from, to time.Time) ([]domain.ReportPoint, error)
}
