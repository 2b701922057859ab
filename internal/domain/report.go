package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var reportParameters = map[string]string{
	"pressure":    "psi",
	"temperature": "°C",
	"flow":        "m³/h",
	"level":       "m",
}

// ReportParameterUnit returns the display unit for a report parameter, or
// false when the parameter is unknown.
func ReportParameterUnit(parameter string) (string, bool) {
	unit, ok := reportParameters[parameter]
	return unit, ok
}

// ReportRequest is the validated body of POST /api/reportes.
type ReportRequest struct {
	WellID    uuid.UUID `json:"pozo_id"`
	StartDate time.Time `json:"fecha_inicio"`
	EndDate   time.Time `json:"fecha_fin"`
	Parameter string    `json:"parametro"`
}

func (r ReportRequest) Validate() error {
	if r.WellID == uuid.Nil {
		return errors.New("pozo_id is required")
	}
	if r.StartDate.IsZero() {
		return errors.New("fecha_inicio is required")
	}
	if r.EndDate.IsZero() {
		return errors.New("fecha_fin is required")
	}
	if !r.EndDate.After(r.StartDate) {
		return errors.New("fecha_fin must be after fecha_inicio")
	}
	if _, ok := ReportParameterUnit(r.Parameter); !ok {
		return errors.New("parametro must be one of pressure, temperature, flow, level")
	}
	return nil
}

// ReportPoint is one sample of the historical series.
type ReportPoint struct {
	RecordedAt time.Time `json:"recorded_at"`
	Value      float64   `json:"value"`
}

// ReportSummary carries the aggregates shown under the chart.
type ReportSummary struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Report is the response of the report endpoint.
type Report struct {
	WellName  string          `json:"pozo_nombre"`
	Dates     []string        `json:"fechas"`
	Values    []float64       `json:"valores"`
	Summary   []ReportSummary `json:"resumen"`
	Parameter string          `json:"parametro"`
}
