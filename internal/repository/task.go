package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andino-energia/wellwatch/internal/domain"
)

type TaskRepository struct {
	pool PgxPool
}

func NewTaskRepository(pool PgxPool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `t.id, t.title, t.description, t.well_id, w.name, t.assignee,
	       t.assigner, t.due_date, t.critical, t.status, t.resolution,
	       t.link_url, t.photo_url, t.document_url, t.created_at, t.updated_at`

func (r *TaskRepository) List(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN wells w ON w.id = t.well_id
	`

	var args []any
	if status != nil {
		query += ` WHERE t.status = $1`
		args = append(args, *status)
	}

	query += ` ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.WellID, &t.WellName,
			&t.Assignee, &t.Assigner, &t.DueDate, &t.Critical, &t.Status,
			&t.Resolution, &t.LinkURL, &t.PhotoURL, &t.DocumentURL,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN wells w ON w.id = t.well_id
		WHERE t.id = $1
	`

	var t domain.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.WellID, &t.WellName,
		&t.Assignee, &t.Assigner, &t.DueDate, &t.Critical, &t.Status,
		&t.Resolution, &t.LinkURL, &t.PhotoURL, &t.DocumentURL,
		&t.CreatedAt, &t.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &t, nil
}

// Create inserts the task and its implicit creation history record in one
// transaction.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create task: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}

	insert := `
		INSERT INTO tasks (id, title, description, well_id, assignee, assigner,
		                   due_date, critical, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err = tx.QueryRow(ctx, insert,
		task.ID, task.Title, task.Description, task.WellID, task.Assignee,
		task.Assigner, task.DueDate, task.Critical, task.Status,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	history := `
		INSERT INTO task_history (task_id, change_type, acting_user, new_value)
		VALUES ($1, 'created', $2, $3)
	`

	if _, err := tx.Exec(ctx, history, task.ID, task.Assigner, string(task.Status)); err != nil {
		return fmt.Errorf("record task creation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create task: %w", err)
	}

	return nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error {
	query := `
		UPDATE tasks
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// UpdateResolution sets resolution details and the resolved status in one
// statement so a failed write never leaves a resolved task without evidence.
func (r *TaskRepository) UpdateResolution(ctx context.Context, id uuid.UUID, res domain.TaskResolution) error {
	query := `
		UPDATE tasks
		SET status = 'resolved',
		    resolution = $2,
		    photo_url = $3,
		    link_url = $4,
		    document_url = $5,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, res.Description, res.PhotoURL, res.LinkURL, res.DocumentURL)
	if err != nil {
		return fmt.Errorf("resolve task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) AppendHistory(ctx context.Context, h *domain.TaskHistory) error {
	query := `
		INSERT INTO task_history (task_id, change_type, acting_user, previous_value, new_value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		h.TaskID, h.ChangeType, h.ActingUser, h.PreviousValue, h.NewValue,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("append task history: %w", err)
	}

	return nil
}

// ListHistory returns the task's history newest first. A task with no history
// yields an empty slice, not an error.
func (r *TaskRepository) ListHistory(ctx context.Context, taskID uuid.UUID) ([]domain.TaskHistory, error) {
	query := `
		SELECT id, task_id, change_type, acting_user, previous_value, new_value, created_at
		FROM task_history
		WHERE task_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("list task history: %w", err)
	}
	defer rows.Close()

	history := []domain.TaskHistory{}
	for rows.Next() {
		var h domain.TaskHistory
		err := rows.Scan(
			&h.ID, &h.TaskID, &h.ChangeType, &h.ActingUser,
			&h.PreviousValue, &h.NewValue, &h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task history: %w", err)
		}
		history = append(history, h)
	}

	return history, rows.Err()
}
