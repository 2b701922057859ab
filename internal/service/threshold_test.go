package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andino-energia/wellwatch/internal/domain"
)

func TestThresholdService_ForWell(t *testing.T) {
	actor := domain.ActorContext{UserID: uuid.New(), Email: "ana@andino.com"}
	wellID := uuid.New()

	override := &domain.ThresholdConfig{
		UserID:           actor.UserID,
		WellID:           &wellID,
		PressureLimit:    9500,
		TemperatureLimit: 90,
		FlowLimit:        700,
	}

	tests := []struct {
		name       string
		setupMocks func(*MockThresholdRepository, *MockGuard)
		want       float64
		wantErr    error
	}{
		{
			name: "stored override wins",
			setupMocks: func(tr *MockThresholdRepository, g *MockGuard) {
				g.On("AssertWellAccess", mock.Anything, actor, wellID).Return(nil)
				tr.On("GetEffective", mock.Anything, actor.UserID, wellID).Return(override, nil)
			},
			want: 9500,
		},
		{
			name: "hardcoded fallback when nothing stored",
			setupMocks: func(tr *MockThresholdRepository, g *MockGuard) {
				g.On("AssertWellAccess", mock.Anything, actor, wellID).Return(nil)
				tr.On("GetEffective", mock.Anything, actor.UserID, wellID).Return(nil, domain.ErrNotFound)
			},
			want: domain.DefaultPressureLimit,
		},
		{
			name: "unassigned well forbidden",
			setupMocks: func(tr *MockThresholdRepository, g *MockGuard) {
				g.On("AssertWellAccess", mock.Anything, actor, wellID).Return(domain.ErrWellNotAssigned)
			},
			wantErr: domain.ErrWellNotAssigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thresholds := &MockThresholdRepository{}
			guard := &MockGuard{}
			tt.setupMocks(thresholds, guard)

			svc := NewThresholdService(thresholds, guard, testLogger())
			got, err := svc.ForWell(context.Background(), actor, wellID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.PressureLimit)
			}

			thresholds.AssertExpectations(t)
			guard.AssertExpectations(t)
		})
	}
}

func TestThresholdService_SaveOverride(t *testing.T) {
	actor := domain.ActorContext{UserID: uuid.New(), Email: "ana@andino.com"}
	wellID := uuid.New()

	t.Run("pins config to actor and well", func(t *testing.T) {
		thresholds := &MockThresholdRepository{}
		guard := &MockGuard{}
		guard.On("AssertWellAccess", mock.Anything, actor, wellID).Return(nil)
		thresholds.On("Upsert", mock.Anything, mock.MatchedBy(func(cfg *domain.ThresholdConfig) bool {
			return cfg.UserID == actor.UserID && cfg.WellID != nil && *cfg.WellID == wellID
		})).Return(nil)

		svc := NewThresholdService(thresholds, guard, testLogger())
		got, err := svc.SaveOverride(context.Background(), actor, wellID, domain.ThresholdConfig{
			PressureLimit:    9000,
			TemperatureLimit: 80,
			FlowLimit:        500,
		})

		require.NoError(t, err)
		assert.Equal(t, actor.UserID, got.UserID)
		thresholds.AssertExpectations(t)
	})

	t.Run("non-positive limits rejected", func(t *testing.T) {
		svc := NewThresholdService(&MockThresholdRepository{}, &MockGuard{}, testLogger())
		_, err := svc.SaveOverride(context.Background(), actor, wellID, domain.ThresholdConfig{
			PressureLimit: -1,
		})

		assert.ErrorIs(t, err, domain.ErrValidationFailed)
	})
}

func TestThresholdService_SaveDefaults(t *testing.T) {
	actor := domain.ActorContext{UserID: uuid.New(), Email: "ana@andino.com"}

	thresholds := &MockThresholdRepository{}
	thresholds.On("Upsert", mock.Anything, mock.MatchedBy(func(cfg *domain.ThresholdConfig) bool {
		return cfg.UserID == actor.UserID && cfg.WellID == nil
	})).Return(nil)

	svc := NewThresholdService(thresholds, &MockGuard{}, testLogger())
	got, err := svc.SaveDefaults(context.Background(), actor, domain.ThresholdConfig{
		PressureLimit:    7000,
		TemperatureLimit: 75,
		FlowLimit:        550,
	})

	require.NoError(t, err)
	assert.Nil(t, got.WellID)
	thresholds.AssertExpectations(t)
}
