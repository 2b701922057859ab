package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/repository"
)

// SimulationResult reports the outcome of a bulk simulation run. Enabled is
// false when the actor's simulation flag is off, in which case no well was
// touched.
type SimulationResult struct {
	Enabled   bool          `json:"enabled"`
	Succeeded []uuid.UUID   `json:"succeeded"`
	Failed    []WellFailure `json:"failed"`
}

// WellFailure names one well whose simulation or threshold check failed.
type WellFailure struct {
	WellID uuid.UUID `json:"well_id"`
	Reason string    `json:"reason"`
}

type SimulationService struct {
	wells  repository.WellRepositoryInterface
	users  repository.UserRepositoryInterface
	logger *slog.Logger
}

func NewSimulationService(
	wells repository.WellRepositoryInterface,
	users repository.UserRepositoryInterface,
	logger *slog.Logger,
) *SimulationService {
	return &SimulationService{wells: wells, users: users, logger: logger}
}

// SimulateWell generates new readings for one well and runs the threshold
// check against it. It returns false, without mutating anything, when the
// actor's simulation flag is off or the well is not assigned to them.
func (s *SimulationService) SimulateWell(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) (bool, error) {
	enabled, err := s.flagEnabled(ctx, actor)
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, nil
	}

	assigned, err := s.wells.IsAssigned(ctx, wellID, actor.UserID)
	if err != nil {
		return false, domain.ErrUpstream.WithError(err)
	}
	if !assigned {
		return false, nil
	}

	if err := s.runWell(ctx, actor, wellID); err != nil {
		return false, err
	}
	return true, nil
}

// SimulateAll runs the simulation over every well assigned to the actor,
// sequentially, collecting per-well failures instead of aborting the run.
func (s *SimulationService) SimulateAll(ctx context.Context, actor domain.ActorContext) (*SimulationResult, error) {
	result := &SimulationResult{
		Succeeded: []uuid.UUID{},
		Failed:    []WellFailure{},
	}

	enabled, err := s.flagEnabled(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return result, nil
	}
	result.Enabled = true

	wellIDs, err := s.wells.UserWellIDs(ctx, actor.UserID)
	if err != nil {
		return nil, domain.ErrUpstream.WithError(err)
	}

	for _, wellID := range wellIDs {
		if err := s.runWell(ctx, actor, wellID); err != nil {
			s.logger.Warn("well simulation failed", "well_id", wellID, "error", err)
			result.Failed = append(result.Failed, WellFailure{WellID: wellID, Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, wellID)
	}

	s.logger.Info("simulation run finished",
		"user_id", actor.UserID,
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
	)
	return result, nil
}

// SetEnabled toggles the actor's simulation flag.
func (s *SimulationService) SetEnabled(ctx context.Context, actor domain.ActorContext, enabled bool) error {
	return s.users.SetSimulationEnabled(ctx, actor.UserID, enabled)
}

func (s *SimulationService) flagEnabled(ctx context.Context, actor domain.ActorContext) (bool, error) {
	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return false, err
	}
	return user.SimulationEnabled, nil
}

// runWell updates the readings first so the threshold check always evaluates
// the fresh values.
func (s *SimulationService) runWell(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) error {
	if err := s.wells.SimulateReadings(ctx, wellID); err != nil {
		return fmt.Errorf("simulate readings: %w", err)
	}

	alerts, err := s.wells.CheckThresholds(ctx, wellID, actor.UserID)
	if err != nil {
		return fmt.Errorf("check thresholds: %w", err)
	}
	if alerts > 0 {
		s.logger.Info("threshold check raised alerts", "well_id", wellID, "count", alerts)
	}
	return nil
}
