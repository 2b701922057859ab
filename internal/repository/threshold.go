package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andino-energia/wellwatch/internal/domain"
)

type ThresholdRepository struct {
	pool PgxPool
}

func NewThresholdRepository(pool PgxPool) *ThresholdRepository {
	return &ThresholdRepository{pool: pool}
}

// GetEffective returns the per-well override when present, otherwise the
// user's defaults. Returns ErrNotFound when neither exists; the caller falls
// back to the hardcoded defaults.
func (r *ThresholdRepository) GetEffective(ctx context.Context, userID, wellID uuid.UUID) (*domain.ThresholdConfig, error) {
	query := `
		SELECT id, user_id, well_id, pressure_limit, temperature_limit, flow_limit
		FROM thresholds
		WHERE user_id = $1 AND (well_id = $2 OR well_id IS NULL)
		ORDER BY well_id NULLS LAST
		LIMIT 1
	`

	var cfg domain.ThresholdConfig
	err := r.pool.QueryRow(ctx, query, userID, wellID).Scan(
		&cfg.ID, &cfg.UserID, &cfg.WellID,
		&cfg.PressureLimit, &cfg.TemperatureLimit, &cfg.FlowLimit,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get effective thresholds: %w", err)
	}

	return &cfg, nil
}

func (r *ThresholdRepository) GetDefaults(ctx context.Context, userID uuid.UUID) (*domain.ThresholdConfig, error) {
	query := `
		SELECT id, user_id, well_id, pressure_limit, temperature_limit, flow_limit
		FROM thresholds
		WHERE user_id = $1 AND well_id IS NULL
	`

	var cfg domain.ThresholdConfig
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&cfg.ID, &cfg.UserID, &cfg.WellID,
		&cfg.PressureLimit, &cfg.TemperatureLimit, &cfg.FlowLimit,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get default thresholds: %w", err)
	}

	return &cfg, nil
}

// Upsert creates or replaces a threshold row, keyed by (user_id, well_id)
// where well_id NULL means the user's global defaults.
func (r *ThresholdRepository) Upsert(ctx context.Context, cfg *domain.ThresholdConfig) error {
	query := `
		INSERT INTO thresholds (user_id, well_id, pressure_limit, temperature_limit, flow_limit)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, well_id)
		DO UPDATE SET pressure_limit = EXCLUDED.pressure_limit,
		              temperature_limit = EXCLUDED.temperature_limit,
		              flow_limit = EXCLUDED.flow_limit
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		cfg.UserID, cfg.WellID, cfg.PressureLimit, cfg.TemperatureLimit, cfg.FlowLimit,
	).Scan(&cfg.ID)
	if err != nil {
		return fmt.Errorf("upsert thresholds: %w", err)
	}

	return nil
}
