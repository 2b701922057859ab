package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertTypeCritical AlertType = "critical"
	AlertTypeWarning  AlertType = "warning"
)

type AlertFilter string

const (
	AlertFilterAll      AlertFilter = "all"
	AlertFilterCritical AlertFilter = "critical"
	AlertFilterWarning  AlertFilter = "warning"
	AlertFilterResolved AlertFilter = "resolved"
)

func (f AlertFilter) Valid() bool {
	switch f {
	case AlertFilterAll, AlertFilterCritical, AlertFilterWarning, AlertFilterResolved:
		return true
	}
	return false
}

// Alert is a threshold-derived notification for a well. Alerts are created
// only by the comprobar_umbrales_pozo procedure, never by the API directly.
//
// Invariant: Resolved is true iff ResolvedAt is non-nil.
type Alert struct {
	ID          uuid.UUID  `json:"id"`
	WellID      uuid.UUID  `json:"well_id"`
	WellName    string     `json:"well_name,omitempty"`
	Type        AlertType  `json:"type"`
	Message     string     `json:"message"`
	Value       *float64   `json:"value,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	Resolved    bool       `json:"resolved"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	DocumentURL string     `json:"document_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CheckInvariant reports whether the resolved flag and resolution timestamp
// agree. Repositories must never persist an alert violating this.
func (a *Alert) CheckInvariant() error {
	if a.Resolved != (a.ResolvedAt != nil) {
		return errors.New("alert resolved flag disagrees with resolution timestamp")
	}
	return nil
}

// AlertHistory is an immutable copy of a resolved alert taken at archival
// time. Append-only; never mutated or deleted.
type AlertHistory struct {
	ID          uuid.UUID  `json:"id"`
	AlertID     uuid.UUID  `json:"alert_id"`
	WellID      uuid.UUID  `json:"well_id"`
	Type        AlertType  `json:"type"`
	Message     string     `json:"message"`
	Value       *float64   `json:"value,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	DocumentURL string     `json:"document_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  time.Time  `json:"archived_at"`
}
