package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type WellStatus string

const (
	WellStatusActive       WellStatus = "active"
	WellStatusWarning      WellStatus = "warning"
	WellStatusOutOfService WellStatus = "out_of_service"
)

// Well is a monitored production site. Readings are mutated by the simulation
// procedures and by manual edits; wells are never deleted by lifecycle logic.
type Well struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	Pressure        float64    `json:"pressure"`
	Temperature     float64    `json:"temperature"`
	Flow            float64    `json:"flow"`
	Level           float64    `json:"level"`
	LevelPercentage float64    `json:"level_percentage"`
	Status          WellStatus `json:"status"`
	DailyProduction float64    `json:"daily_production"`
	UpdatedAt       time.Time  `json:"updated_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (s WellStatus) Valid() bool {
	switch s {
	case WellStatusActive, WellStatusWarning, WellStatusOutOfService:
		return true
	}
	return false
}

// WellReadings is the mutable subset a manual edit may change.
type WellReadings struct {
	Pressure        float64    `json:"pressure"`
	Temperature     float64    `json:"temperature"`
	Flow            float64    `json:"flow"`
	Level           float64    `json:"level"`
	LevelPercentage float64    `json:"level_percentage"`
	Status          WellStatus `json:"status"`
	DailyProduction float64    `json:"daily_production"`
}

func (r WellReadings) Validate() error {
	if !r.Status.Valid() {
		return errors.New("status must be one of active, warning, out_of_service")
	}
	if r.LevelPercentage < 0 || r.LevelPercentage > 100 {
		return errors.New("level_percentage must be between 0 and 100")
	}
	return nil
}
