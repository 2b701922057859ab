package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/andino-energia/wellwatch/internal/auth"
	"github.com/andino-energia/wellwatch/internal/domain"
)

// LocalActor is the key to retrieve the authenticated actor from context
const LocalActor = "actor"

// TokenValidator validates a bearer token and returns its claims
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Auth creates a JWT authentication middleware. On success the actor is
// stored in the request context for handlers to read.
func Auth(validator TokenValidator, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return domain.ErrUnauthorized
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			logger.Debug("token rejected", "path", c.Path(), "error", err)
			return domain.ErrUnauthorized
		}

		c.Locals(LocalActor, domain.ActorContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// extractBearerToken extracts the token from the Authorization header
func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// GetActor retrieves the authenticated actor from the Fiber context
func GetActor(c *fiber.Ctx) (domain.ActorContext, error) {
	actor, ok := c.Locals(LocalActor).(domain.ActorContext)
	if !ok {
		return domain.ActorContext{}, domain.ErrUnauthorized
	}
	return actor, nil
}
