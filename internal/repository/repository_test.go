package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andino-energia/wellwatch/internal/domain"
)

// AlertRepository tests

func alertRows(alerts ...domain.Alert) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "well_id", "name", "type", "message", "value", "unit",
		"resolved", "resolution", "resolved_at", "photo_url", "document_url", "created_at",
	})
	for _, a := range alerts {
		rows.AddRow(
			a.ID, a.WellID, a.WellName, string(a.Type), a.Message, a.Value,
			a.Unit, a.Resolved, a.Resolution, a.ResolvedAt, a.PhotoURL,
			a.DocumentURL, a.CreatedAt,
		)
	}
	return rows
}

func TestAlertRepository_ListForUser(t *testing.T) {
	userID := uuid.New()
	wellID := uuid.New()
	value := 8200.0
	now := time.Now()

	alert := domain.Alert{
		ID:        uuid.New(),
		WellID:    wellID,
		WellName:  "W1",
		Type:      domain.AlertTypeCritical,
		Message:   "Pressure 8200 psi exceeds limit 8000 psi",
		Value:     &value,
		Unit:      "psi",
		CreatedAt: now,
	}

	tests := []struct {
		name      string
		filter    domain.AlertFilter
		wellID    *uuid.UUID
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantLen   int
		wantErr   bool
	}{
		{
			name:   "all alerts",
			filter: domain.AlertFilterAll,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM alerts a JOIN wells w .+ JOIN well_users wu .+ WHERE true ORDER BY a.created_at DESC`).
					WithArgs(userID).
					WillReturnRows(alertRows(alert))
			},
			wantLen: 1,
		},
		{
			name:   "critical filter scoped to well",
			filter: domain.AlertFilterCritical,
			wellID: &wellID,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE a.type = 'critical' AND a.resolved = false AND a.well_id = \$2 ORDER BY a.created_at DESC`).
					WithArgs(userID, wellID).
					WillReturnRows(alertRows(alert))
			},
			wantLen: 1,
		},
		{
			name:   "resolved filter, none found",
			filter: domain.AlertFilterResolved,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE a.resolved = true ORDER BY a.created_at DESC`).
					WithArgs(userID).
					WillReturnRows(alertRows())
			},
			wantLen: 0,
		},
		{
			name:   "database error",
			filter: domain.AlertFilterAll,
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM alerts a`).
					WithArgs(userID).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewAlertRepository(mock)
			got, err := repo.ListForUser(context.Background(), userID, tt.filter, tt.wellID)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_Resolve(t *testing.T) {
	alertID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful resolve",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE alerts SET resolved = true`).
					WithArgs(alertID, "valve replaced", "https://cdn/photo.jpg", "").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "alert not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE alerts SET resolved = true`).
					WithArgs(alertID, "valve replaced", "https://cdn/photo.jpg", "").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrAlertNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewAlertRepository(mock)
			err = repo.Resolve(context.Background(), alertID, "valve replaced", "https://cdn/photo.jpg", "")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_ResolveAllForUser(t *testing.T) {
	userID := uuid.New()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE alerts SET resolved = true`).
		WithArgs(userID, "Resolved in bulk").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	repo := NewAlertRepository(mock)
	n, err := repo.ResolveAllForUser(context.Background(), userID, "Resolved in bulk")

	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_ArchiveAllResolvedForUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      int64
		wantErr   bool
	}{
		{
			name: "archives then deletes",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO alert_history`).
					WithArgs(userID).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
				mock.ExpectExec(`DELETE FROM alerts`).
					WithArgs(userID).
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
				mock.ExpectCommit()
			},
			want: 2,
		},
		{
			name: "archival failure aborts before deletion",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO alert_history`).
					WithArgs(userID).
					WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewAlertRepository(mock)
			n, err := repo.ArchiveAllResolvedForUser(context.Background(), userID)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, n)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAlertRepository_ArchiveAndDelete(t *testing.T) {
	alertID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "archives single alert then deletes it",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO alert_history`).
					WithArgs(alertID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(`DELETE FROM alerts WHERE id = \$1`).
					WithArgs(alertID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "alert not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO alert_history`).
					WithArgs(alertID).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAlertNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewAlertRepository(mock)
			err = repo.ArchiveAndDelete(context.Background(), alertID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TaskRepository tests

func TestTaskRepository_Create(t *testing.T) {
	wellID := uuid.New()
	now := time.Now()

	task := &domain.Task{
		Title:    "Replace valve",
		WellID:   wellID,
		Assignee: "bob@x.com",
		Assigner: "alice@x.com",
		DueDate:  now.Add(48 * time.Hour),
	}

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs(pgxmock.AnyArg(), task.Title, "", wellID, task.Assignee,
			task.Assigner, task.DueDate, false, domain.TaskStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec(`INSERT INTO task_history`).
		WithArgs(pgxmock.AnyArg(), task.Assigner, "pending").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := NewTaskRepository(mock)
	err = repo.Create(context.Background(), task)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, now, task.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateStatus_NotFound(t *testing.T) {
	taskID := uuid.New()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE tasks SET status = \$2`).
		WithArgs(taskID, domain.TaskStatusInProgress).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewTaskRepository(mock)
	err = repo.UpdateStatus(context.Background(), taskID, domain.TaskStatusInProgress)

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListHistory_Empty(t *testing.T) {
	taskID := uuid.New()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .+ FROM task_history`).
		WithArgs(taskID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "task_id", "change_type", "acting_user", "previous_value", "new_value", "created_at",
		}))

	repo := NewTaskRepository(mock)
	history, err := repo.ListHistory(context.Background(), taskID)

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ThresholdRepository tests

func TestThresholdRepository_GetEffective(t *testing.T) {
	userID := uuid.New()
	wellID := uuid.New()
	rowID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      *domain.ThresholdConfig
		wantErr   error
	}{
		{
			name: "per-well override wins",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`ORDER BY well_id NULLS LAST`).
					WithArgs(userID, wellID).
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "user_id", "well_id", "pressure_limit", "temperature_limit", "flow_limit",
					}).AddRow(rowID, userID, &wellID, 7500.0, 80.0, 550.0))
			},
			want: &domain.ThresholdConfig{
				ID: rowID, UserID: userID, WellID: &wellID,
				PressureLimit: 7500, TemperatureLimit: 80, FlowLimit: 550,
			},
		},
		{
			name: "nothing configured",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`ORDER BY well_id NULLS LAST`).
					WithArgs(userID, wellID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewThresholdRepository(mock)
			got, err := repo.GetEffective(context.Background(), userID, wellID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// WellRepository tests

func TestWellRepository_IsAssigned(t *testing.T) {
	wellID := uuid.New()
	userID := uuid.New()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT check_well_user_assignment`).
		WithArgs(wellID, userID).
		WillReturnRows(pgxmock.NewRows([]string{"check_well_user_assignment"}).AddRow(true))

	repo := NewWellRepository(mock)
	assigned, err := repo.IsAssigned(context.Background(), wellID, userID)

	require.NoError(t, err)
	assert.True(t, assigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWellRepository_CheckThresholds(t *testing.T) {
	wellID := uuid.New()
	userID := uuid.New()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT comprobar_umbrales_pozo`).
		WithArgs(wellID, userID).
		WillReturnRows(pgxmock.NewRows([]string{"comprobar_umbrales_pozo"}).AddRow(1))

	repo := NewWellRepository(mock)
	created, err := repo.CheckThresholds(context.Background(), wellID, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// UserRepository tests

func TestUserRepository_GetByEmail(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:  "found",
			email: "bob@x.com",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
					WithArgs("bob@x.com").
					WillReturnRows(pgxmock.NewRows([]string{
						"id", "email", "name", "role", "password_hash", "simulation_enabled", "created_at",
					}).AddRow(userID, "bob@x.com", "Bob", "operator", "$2a$10$hash", true, now))
			},
		},
		{
			name:  "not found",
			email: "ghost@x.com",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
					WithArgs("ghost@x.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewUserRepository(mock)
			got, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.email, got.Email)
				assert.True(t, got.SimulationEnabled)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
