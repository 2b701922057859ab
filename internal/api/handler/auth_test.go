package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/auth"
	"github.com/andino-energia/wellwatch/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newAuthApp(users *MockUserStore) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(testLogger())})
	jwt := auth.NewJWTService("test-secret", "wellwatch-api", time.Hour)
	h := NewAuthHandler(users, jwt, testLogger())
	app.Post("/api/login", h.Login)
	app.Post("/api/forgot-password", h.ForgotPassword)
	return app
}

func TestAuthHandler_Login(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	userID := uuid.New()
	account := &domain.User{
		ID:           userID,
		Email:        "ana@andino.com",
		Role:         "operator",
		PasswordHash: hash,
	}

	tests := []struct {
		name       string
		body       map[string]string
		setupMocks func(*MockUserStore)
		wantStatus int
	}{
		{
			name: "valid credentials return a token",
			body: map[string]string{"email": "ana@andino.com", "password": "hunter2"},
			setupMocks: func(us *MockUserStore) {
				us.On("GetByEmail", mock.Anything, "ana@andino.com").Return(account, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "email is normalized before lookup",
			body: map[string]string{"email": "  Ana@Andino.com ", "password": "hunter2"},
			setupMocks: func(us *MockUserStore) {
				us.On("GetByEmail", mock.Anything, "ana@andino.com").Return(account, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]string{"email": "ana@andino.com", "password": "hunter3"},
			setupMocks: func(us *MockUserStore) {
				us.On("GetByEmail", mock.Anything, "ana@andino.com").Return(account, nil)
			},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "unknown account looks identical to wrong password",
			body: map[string]string{"email": "nobody@andino.com", "password": "hunter2"},
			setupMocks: func(us *MockUserStore) {
				us.On("GetByEmail", mock.Anything, "nobody@andino.com").Return(nil, domain.ErrUserNotFound)
			},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       map[string]string{"email": "", "password": ""},
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserStore{}
			if tt.setupMocks != nil {
				tt.setupMocks(users)
			}
			app := newAuthApp(users)

			payload, err := json.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == fiber.StatusOK {
				var body LoginResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.NotEmpty(t, body.Token)
				assert.Equal(t, userID, body.User.ID)
				assert.Empty(t, body.User.PasswordHash)
			}

			users.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_ForgotPassword_AlwaysAccepts(t *testing.T) {
	app := newAuthApp(&MockUserStore{})

	payload, _ := json.Marshal(map[string]string{"email": "nobody@andino.com"})
	req := httptest.NewRequest("POST", "/api/forgot-password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
