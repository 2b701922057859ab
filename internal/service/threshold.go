package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/repository"
)

type ThresholdService struct {
	thresholds repository.ThresholdRepositoryInterface
	guard      WellAccessGuard
	logger     *slog.Logger
}

func NewThresholdService(
	thresholds repository.ThresholdRepositoryInterface,
	guard WellAccessGuard,
	logger *slog.Logger,
) *ThresholdService {
	return &ThresholdService{thresholds: thresholds, guard: guard, logger: logger}
}

// ForWell returns the limits that apply to a well for the actor: the per-well
// override when present, otherwise the actor's defaults, otherwise the
// hardcoded fallbacks.
func (s *ThresholdService) ForWell(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) (*domain.ThresholdConfig, error) {
	if err := s.guard.AssertWellAccess(ctx, actor, wellID); err != nil {
		return nil, err
	}

	cfg, err := s.thresholds.GetEffective(ctx, actor.UserID, wellID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fallback := domain.FallbackThresholds(actor.UserID)
			return &fallback, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the actor's global limits, falling back to the hardcoded
// values when none are stored.
func (s *ThresholdService) Defaults(ctx context.Context, actor domain.ActorContext) (*domain.ThresholdConfig, error) {
	cfg, err := s.thresholds.GetDefaults(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fallback := domain.FallbackThresholds(actor.UserID)
			return &fallback, nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveDefaults stores the actor's global limits.
func (s *ThresholdService) SaveDefaults(ctx context.Context, actor domain.ActorContext, cfg domain.ThresholdConfig) (*domain.ThresholdConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	cfg.UserID = actor.UserID
	cfg.WellID = nil
	if err := s.thresholds.Upsert(ctx, &cfg); err != nil {
		return nil, err
	}

	s.logger.Info("default thresholds saved", "user_id", actor.UserID)
	return &cfg, nil
}

// SaveOverride stores per-well limits for one of the actor's wells. The
// override takes precedence over the defaults from then on.
func (s *ThresholdService) SaveOverride(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID, cfg domain.ThresholdConfig) (*domain.ThresholdConfig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	if err := s.guard.AssertWellAccess(ctx, actor, wellID); err != nil {
		return nil, err
	}

	cfg.UserID = actor.UserID
	cfg.WellID = &wellID
	if err := s.thresholds.Upsert(ctx, &cfg); err != nil {
		return nil, err
	}

	s.logger.Info("well thresholds saved", "user_id", actor.UserID, "well_id", wellID)
	return &cfg, nil
}
