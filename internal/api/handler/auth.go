package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/auth"
	"github.com/andino-energia/wellwatch/internal/domain"
)

// UserStore looks up accounts during login
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer signs session tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email, role string) (string, error)
}

type AuthHandler struct {
	users  UserStore
	tokens TokenIssuer
	logger *slog.Logger
}

func NewAuthHandler(users UserStore, tokens TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login POST /api/login - exchange credentials for a JWT
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := h.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		// Unknown accounts and lookup failures both come back as invalid
		// credentials so the endpoint does not leak which emails exist.
		return domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		h.logger.Warn("failed login attempt", "email", req.Email, "ip", c.IP())
		return domain.ErrInvalidCredentials
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	return c.JSON(LoginResponse{Token: token, User: user})
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword POST /api/forgot-password - acknowledge without revealing
// whether the account exists. Mail delivery is handled out of band.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		h.logger.Info("password reset requested", "email", email)
	}

	return c.JSON(fiber.Map{
		"message": "Si el correo existe, recibirás instrucciones para restablecer tu contraseña",
	})
}
