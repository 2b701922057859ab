package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/repository"
)

type WellService struct {
	wells  repository.WellRepositoryInterface
	guard  WellAccessGuard
	logger *slog.Logger
}

func NewWellService(
	wells repository.WellRepositoryInterface,
	guard WellAccessGuard,
	logger *slog.Logger,
) *WellService {
	return &WellService{wells: wells, guard: guard, logger: logger}
}

// List returns the wells assigned to the actor.
func (s *WellService) List(ctx context.Context, actor domain.ActorContext) ([]domain.Well, error) {
	return s.wells.ListForUser(ctx, actor.UserID)
}

// Get returns one of the actor's wells.
func (s *WellService) Get(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) (*domain.Well, error) {
	if err := s.guard.AssertWellAccess(ctx, actor, wellID); err != nil {
		return nil, err
	}
	return s.wells.GetByID(ctx, wellID)
}

// UpdateReadings overwrites a well's current readings after validation.
func (s *WellService) UpdateReadings(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID, readings domain.WellReadings) error {
	if err := readings.Validate(); err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}
	if err := s.guard.AssertWellAccess(ctx, actor, wellID); err != nil {
		return err
	}

	if err := s.wells.UpdateReadings(ctx, wellID, readings); err != nil {
		return err
	}

	s.logger.Info("well readings updated", "well_id", wellID, "user_id", actor.UserID)
	return nil
}
