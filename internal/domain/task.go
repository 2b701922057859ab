package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusResolved   TaskStatus = "resolved"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusResolved:
		return true
	}
	return false
}

// Task is a maintenance work item assigned to a user against a well.
// Only the assignee may transition its status.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	WellID      uuid.UUID  `json:"well_id"`
	WellName    string     `json:"well_name,omitempty"`
	Assignee    string     `json:"assignee"`
	Assigner    string     `json:"assigner"`
	DueDate     time.Time  `json:"due_date"`
	Critical    bool       `json:"critical"`
	Status      TaskStatus `json:"status"`
	Resolution  string     `json:"resolution,omitempty"`
	LinkURL     string     `json:"link_url,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	DocumentURL string     `json:"document_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTaskInput carries the fields required to create a task.
type NewTaskInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WellID      uuid.UUID `json:"well_id"`
	Assignee    string    `json:"assignee"`
	DueDate     time.Time `json:"due_date"`
	Critical    bool      `json:"critical"`
}

func (in NewTaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("title is required")
	}
	if in.WellID == uuid.Nil {
		return errors.New("well_id is required")
	}
	if strings.TrimSpace(in.Assignee) == "" {
		return errors.New("assignee is required")
	}
	if in.DueDate.IsZero() {
		return errors.New("due_date is required")
	}
	return nil
}

// TaskResolution is the evidence attached when a task transitions to resolved.
type TaskResolution struct {
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url,omitempty"`
	LinkURL     string `json:"link_url,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
}

func (r TaskResolution) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("resolution description is required")
	}
	return nil
}

type TaskChangeType string

const (
	TaskChangeCreated TaskChangeType = "created"
	TaskChangeStatus  TaskChangeType = "status_change"
	TaskChangeField   TaskChangeType = "field_change"
)

// TaskHistory is an append-only log entry, one per observed state or field
// mutation.
type TaskHistory struct {
	ID            uuid.UUID      `json:"id"`
	TaskID        uuid.UUID      `json:"task_id"`
	ChangeType    TaskChangeType `json:"change_type"`
	ActingUser    string         `json:"acting_user"`
	PreviousValue string         `json:"previous_value,omitempty"`
	NewValue      string         `json:"new_value,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
