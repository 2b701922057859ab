package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andino-energia/wellwatch/internal/domain"
)

type AlertRepository struct {
	pool PgxPool
}

func NewAlertRepository(pool PgxPool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

// ListForUser returns the alerts on wells assigned to the user, newest first.
// Authorization is part of the query: alerts on unassigned wells are never
// returned.
func (r *AlertRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter domain.AlertFilter, wellID *uuid.UUID) ([]domain.Alert, error) {
	query := `
		SELECT a.id, a.well_id, w.name, a.type, a.message, a.value, a.unit,
		       a.resolved, a.resolution, a.resolved_at, a.photo_url,
		       a.document_url, a.created_at
		FROM alerts a
		JOIN wells w ON w.id = a.well_id
		JOIN well_users wu ON wu.well_id = a.well_id AND wu.user_id = $1
	`

	args := []any{userID}

	switch filter {
	case domain.AlertFilterCritical:
		query += ` WHERE a.type = 'critical' AND a.resolved = false`
	case domain.AlertFilterWarning:
		query += ` WHERE a.type = 'warning' AND a.resolved = false`
	case domain.AlertFilterResolved:
		query += ` WHERE a.resolved = true`
	default:
		query += ` WHERE true`
	}

	if wellID != nil {
		args = append(args, *wellID)
		query += fmt.Sprintf(` AND a.well_id = $%d`, len(args))
	}

	query += ` ORDER BY a.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		err := rows.Scan(
			&a.ID, &a.WellID, &a.WellName, &a.Type, &a.Message, &a.Value,
			&a.Unit, &a.Resolved, &a.Resolution, &a.ResolvedAt, &a.PhotoURL,
			&a.DocumentURL, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	query := `
		SELECT id, well_id, type, message, value, unit, resolved, resolution,
		       resolved_at, photo_url, document_url, created_at
		FROM alerts
		WHERE id = $1
	`

	var a domain.Alert
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.WellID, &a.Type, &a.Message, &a.Value, &a.Unit,
		&a.Resolved, &a.Resolution, &a.ResolvedAt, &a.PhotoURL,
		&a.DocumentURL, &a.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAlertNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}

	return &a, nil
}

// Resolve marks an alert resolved. Re-resolving overwrites the resolution
// fields; resolved and resolved_at always move together.
func (r *AlertRepository) Resolve(ctx context.Context, id uuid.UUID, resolution, photoURL, documentURL string) error {
	query := `
		UPDATE alerts
		SET resolved = true,
		    resolution = $2,
		    resolved_at = NOW(),
		    photo_url = $3,
		    document_url = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, resolution, photoURL, documentURL)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}

	return nil
}

// ResolveAllForUser resolves every unresolved alert on the user's wells and
// returns how many rows changed. Already-resolved alerts are untouched.
func (r *AlertRepository) ResolveAllForUser(ctx context.Context, userID uuid.UUID, resolution string) (int64, error) {
	query := `
		UPDATE alerts
		SET resolved = true,
		    resolution = $2,
		    resolved_at = NOW()
		WHERE resolved = false
		  AND well_id IN (SELECT well_id FROM well_users WHERE user_id = $1)
	`

	result, err := r.pool.Exec(ctx, query, userID, resolution)
	if err != nil {
		return 0, fmt.Errorf("resolve all alerts: %w", err)
	}

	return result.RowsAffected(), nil
}

const archiveInsertColumns = `alert_id, well_id, type, message, value, unit,
			resolution, resolved_at, photo_url, document_url, created_at`

// ArchiveAndDelete copies one alert into alert_history and deletes it from
// the active store, in that order, inside a single transaction. If the
// archival insert fails the alert stays in place.
func (r *AlertRepository) ArchiveAndDelete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin archive: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := `
		INSERT INTO alert_history (` + archiveInsertColumns + `)
		SELECT id, well_id, type, message, value, unit,
		       resolution, resolved_at, photo_url, document_url, created_at
		FROM alerts
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, insert, id)
	if err != nil {
		return fmt.Errorf("archive alert: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete archived alert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit archive: %w", err)
	}

	return nil
}

// ArchiveAllResolvedForUser copies every resolved alert on the user's wells
// into alert_history, then deletes them, inside one transaction. Returns the
// number of alerts archived. An archival failure aborts before any deletion.
func (r *AlertRepository) ArchiveAllResolvedForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin archive: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := `
		INSERT INTO alert_history (` + archiveInsertColumns + `)
		SELECT id, well_id, type, message, value, unit,
		       resolution, resolved_at, photo_url, document_url, created_at
		FROM alerts
		WHERE resolved = true
		  AND well_id IN (SELECT well_id FROM well_users WHERE user_id = $1)
	`

	result, err := tx.Exec(ctx, insert, userID)
	if err != nil {
		return 0, fmt.Errorf("archive resolved alerts: %w", err)
	}
	archived := result.RowsAffected()

	del := `
		DELETE FROM alerts
		WHERE resolved = true
		  AND well_id IN (SELECT well_id FROM well_users WHERE user_id = $1)
	`

	if _, err := tx.Exec(ctx, del, userID); err != nil {
		return 0, fmt.Errorf("delete archived alerts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit archive: %w", err)
	}

	return archived, nil
}
