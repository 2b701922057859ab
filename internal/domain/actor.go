package domain

import "github.com/google/uuid"

// ActorContext identifies the authenticated user a lifecycle operation runs
// on behalf of. It is passed explicitly into every service call instead of
// being read from ambient session state.
type ActorContext struct {
	UserID uuid.UUID
	Email  string
	Role   string
}
