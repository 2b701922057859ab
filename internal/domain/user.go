package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. PasswordHash may hold either a bcrypt hash or
// a legacy plaintext password; the login shim accepts both.
type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	PasswordHash      string    `json:"-"`
	SimulationEnabled bool      `json:"simulation_enabled"`
	CreatedAt         time.Time `json:"created_at"`
}
