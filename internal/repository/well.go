package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andino-energia/wellwatch/internal/domain"
)

type WellRepository struct {
	pool PgxPool
}

func NewWellRepository(pool PgxPool) *WellRepository {
	return &WellRepository{pool: pool}
}

const wellColumns = `id, name, latitude, longitude, pressure, temperature, flow,
	       level, level_percentage, status, daily_production, created_at, updated_at`

func scanWell(row pgx.Row) (*domain.Well, error) {
	var w domain.Well
	err := row.Scan(
		&w.ID, &w.Name, &w.Latitude, &w.Longitude, &w.Pressure, &w.Temperature,
		&w.Flow, &w.Level, &w.LevelPercentage, &w.Status, &w.DailyProduction,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WellRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Well, error) {
	query := `
		SELECT ` + wellColumns + `
		FROM wells
		WHERE id IN (SELECT well_id FROM well_users WHERE user_id = $1)
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wells: %w", err)
	}
	defer rows.Close()

	var wells []domain.Well
	for rows.Next() {
		w, err := scanWell(rows)
		if err != nil {
			return nil, fmt.Errorf("scan well: %w", err)
		}
		wells = append(wells, *w)
	}

	return wells, rows.Err()
}

func (r *WellRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Well, error) {
	query := `
		SELECT ` + wellColumns + `
		FROM wells
		WHERE id = $1
	`

	w, err := scanWell(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWellNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get well: %w", err)
	}

	return w, nil
}

func (r *WellRepository) UpdateReadings(ctx context.Context, id uuid.UUID, readings domain.WellReadings) error {
	query := `
		UPDATE wells
		SET pressure = $2, temperature = $3, flow = $4, level = $5,
		    level_percentage = $6, status = $7, daily_production = $8,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		id, readings.Pressure, readings.Temperature, readings.Flow,
		readings.Level, readings.LevelPercentage, readings.Status,
		readings.DailyProduction,
	)
	if err != nil {
		return fmt.Errorf("update well readings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrWellNotFound
	}

	return nil
}

// IsAssigned wraps the check_well_user_assignment procedure.
func (r *WellRepository) IsAssigned(ctx context.Context, wellID, userID uuid.UUID) (bool, error) {
	var assigned bool
	err := r.pool.QueryRow(ctx, `SELECT check_well_user_assignment($1, $2)`, wellID, userID).Scan(&assigned)
	if err != nil {
		return false, fmt.Errorf("check well assignment: %w", err)
	}
	return assigned, nil
}

// UserWellIDs wraps the get_user_wells procedure.
func (r *WellRepository) UserWellIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT get_user_wells($1)`, userID)
	if err != nil {
		return nil, fmt.Errorf("get user wells: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan well id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// SimulateReadings invokes the simular_valores_pozo procedure, which drifts
// the well's current readings and appends to the historical series.
func (r *WellRepository) SimulateReadings(ctx context.Context, wellID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `SELECT simular_valores_pozo($1)`, wellID); err != nil {
		return fmt.Errorf("simulate well readings: %w", err)
	}
	return nil
}

// CheckThresholds invokes the comprobar_umbrales_pozo procedure and returns
// the number of alerts it created.
func (r *WellRepository) CheckThresholds(ctx context.Context, wellID, userID uuid.UUID) (int, error) {
	var created int
	err := r.pool.QueryRow(ctx, `SELECT comprobar_umbrales_pozo($1, $2)`, wellID, userID).Scan(&created)
	if err != nil {
		return 0, fmt.Errorf("check well thresholds: %w", err)
	}
	return created, nil
}
