package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
)

// AssignmentChecker answers whether a well is assigned to a user. The well
// repository implements it via the check_well_user_assignment procedure.
type AssignmentChecker interface {
	IsAssigned(ctx context.Context, wellID, userID uuid.UUID) (bool, error)
}

// Guard centralizes the per-well authorization check every lifecycle
// operation performs.
type Guard struct {
	wells AssignmentChecker
}

func NewGuard(wells AssignmentChecker) *Guard {
	return &Guard{wells: wells}
}

// AssertWellAccess returns ErrWellNotAssigned when the actor's wells do not
// include the given well, and wraps store failures as upstream errors.
func (g *Guard) AssertWellAccess(ctx context.Context, actor domain.ActorContext, wellID uuid.UUID) error {
	assigned, err := g.wells.IsAssigned(ctx, wellID, actor.UserID)
	if err != nil {
		return domain.ErrUpstream.WithError(err)
	}
	if !assigned {
		return domain.ErrWellNotAssigned
	}
	return nil
}
