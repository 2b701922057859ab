package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andino-energia/wellwatch/internal/domain"
)

type ReportRepository struct {
	pool PgxPool
}

func NewReportRepository(pool PgxPool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) WellName(ctx context.Context, wellID uuid.UUID) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM wells WHERE id = $1`, wellID).Scan(&name)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrWellNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get well name: %w", err)
	}

	return name, nil
}

// Series returns the historical samples for one parameter of one well inside
// the requested window, oldest first.
func (r *ReportRepository) Series(ctx context.Context, wellID uuid.UUID, parameter string, from, to time.Time) ([]domain.ReportPoint, error) {
	query := `
		SELECT recorded_at, value
		FROM well_readings_history
		WHERE well_id = $1 AND parameter = $2
		  AND recorded_at >= $3 AND recorded_at <= $4
		ORDER BY recorded_at ASC
	`

	rows, err := r.pool.Query(ctx, query, wellID, parameter, from, to)
	if err != nil {
		return nil, fmt.Errorf("query report series: %w", err)
	}
	defer rows.Close()

	var points []domain.ReportPoint
	for rows.Next() {
		var p domain.ReportPoint
		if err := rows.Scan(&p.RecordedAt, &p.Value); err != nil {
			return nil, fmt.Errorf("scan report point: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}
