package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Hardcoded fallbacks used when neither a per-well override nor user defaults
// exist.
const (
	DefaultPressureLimit    = 8000 // psi
	DefaultTemperatureLimit = 85   // °C
	DefaultFlowLimit        = 600  // m³/h
)

// ThresholdConfig holds the limits that trigger alert generation. UserID is
// always set; WellID is nil for a user's global defaults and non-nil for a
// per-well override, which takes precedence when present.
type ThresholdConfig struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	WellID           *uuid.UUID `json:"well_id,omitempty"`
	PressureLimit    float64    `json:"pressure_limit"`
	TemperatureLimit float64    `json:"temperature_limit"`
	FlowLimit        float64    `json:"flow_limit"`
}

func (t ThresholdConfig) Validate() error {
	if t.PressureLimit <= 0 || t.TemperatureLimit <= 0 || t.FlowLimit <= 0 {
		return errors.New("threshold limits must be positive")
	}
	return nil
}

// FallbackThresholds returns the hardcoded default configuration.
func FallbackThresholds(userID uuid.UUID) ThresholdConfig {
	return ThresholdConfig{
		UserID:           userID,
		PressureLimit:    DefaultPressureLimit,
		TemperatureLimit: DefaultTemperatureLimit,
		FlowLimit:        DefaultFlowLimit,
	}
}
