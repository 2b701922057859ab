package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/andino-energia/wellwatch/internal/domain"
)

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter domain.AlertFilter, wellID *uuid.UUID) ([]domain.Alert, error) {
	args := m.Called(ctx, userID, filter, wellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) Resolve(ctx context.Context, id uuid.UUID, resolution, photoURL, documentURL string) error {
	args := m.Called(ctx, id, resolution, photoURL, documentURL)
	return args.Error(0)
}

func (m *MockAlertRepository) ResolveAllForUser(ctx context.Context, userID uuid.UUID, resolution string) (int64, error) {
	args := m.Called(ctx, userID, resolution)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlertRepository) ArchiveAndDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlertRepository) ArchiveAllResolvedForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) List(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateResolution(ctx context.Context, id uuid.UUID, res domain.TaskResolution) error {
	args := m.Called(ctx, id, res)
	return args.Error(0)
}

func (m *MockTaskRepository) AppendHistory(ctx context.Context, h *domain.TaskHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockTaskRepository) ListHistory(ctx context.Context, taskID uuid.UUID) ([]domain.TaskHistory, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskHistory), args.Error(1)
}

type MockWellRepository struct {
	mock.Mock
}

func (m *MockWellRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Well, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Well), args.Error(1)
}

func (m *MockWellRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Well, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Well), args.Error(1)
}

func (m *MockWellRepository) UpdateReadings(ctx context.Context, id uuid.UUID, readings domain.WellReadings) error {
	args := m.Called(ctx, id, readings)
	return args.Error(0)
}

func (m *MockWellRepository) IsAssigned(ctx context.Context, wellID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, wellID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWellRepository) UserWellIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockWellRepository) SimulateReadings(ctx context.Context, wellID uuid.UUID) error {
	args := m.Called(ctx, wellID)
	return args.Error(0)
}

func (m *MockWellRepository) CheckThresholds(ctx context.Context, wellID, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, wellID, userID)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetSimulationEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	args := m.Called(ctx, id, enabled)
	return args.Error(0)
}

type MockThresholdRepository struct {
	mock.Mock
}

func (m *MockThresholdRepository) GetEffective(ctx context.Context, userID, wellID uuid.UUID) (*domain.ThresholdConfig, error) {
	args := m.Called(ctx, userID, wellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThresholdConfig), args.Error(1)
}

func (m *MockThresholdRepository) GetDefaults(ctx context.Context, userID uuid.UUID) (*domain.ThresholdConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThresholdConfig), args.Error(1)
}

func (m *MockThresholdRepository) Upsert(ctx context.Context, cfg *domain.ThresholdConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) WellName(ctx context.Context, wellID uuid.UUID) (string, error) {
	args := m.Called(ctx, wellID)
	return args.String(0), args.Error(1)
}

func (m *MockReportRepository) Series(ctx context.Context, wellID uuid.UUID, parameter string, from, to time.Time) ([]domain.ReportPoint, error) {
	args := m.Called(ctx, wellID, parameter, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportPoint), args.Error(1)
}

type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) AssertWellAccess(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) error {
	args := m.Called(ctx, actor, wellID)
	return args.Error(0)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, entityID string, filename string, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, entityID, filename, contentType, data)
	return args.String(0), args.Error(1)
}
