package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// EmptyResponse represents no content response (204)
type EmptyResponse struct{}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	User  UserResponse `json:"user"`
}

// UserResponse represents an account in responses
type UserResponse struct {
	ID                string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email             string `json:"email" example:"ana@andino.com"`
	Name              string `json:"name" example:"Ana Quispe"`
	Role              string `json:"role" example:"operator"`
	SimulationEnabled bool   `json:"simulation_enabled" example:"true"`
}

// AlertResponse represents one alert
type AlertResponse struct {
	ID         string   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	WellID     string   `json:"well_id" example:"7f2c1de0-53cb-4b21-a0c6-2dbe5fd1a111"`
	Type       string   `json:"type" example:"critical"`
	Message    string   `json:"message" example:"Presión crítica: 8450.00 psi"`
	Value      *float64 `json:"value,omitempty" example:"8450"`
	Unit       string   `json:"unit,omitempty" example:"psi"`
	Resolved   bool     `json:"resolved" example:"false"`
	Resolution string   `json:"resolution,omitempty"`
	CreatedAt  string   `json:"created_at" example:"2026-03-01T10:00:00Z"`
}

// AlertListResponse wraps the alert list
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Count  int             `json:"count" example:"3"`
}

// BulkResolveResponse reports how many alerts were resolved
type BulkResolveResponse struct {
	Resolved int64 `json:"resolved" example:"7"`
}

// BulkArchiveResponse reports how many alerts were archived
type BulkArchiveResponse struct {
	Archived int64 `json:"archived" example:"3"`
}

// TaskResponse represents one maintenance task
type TaskResponse struct {
	ID       string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title    string `json:"title" example:"Inspeccionar separador"`
	WellID   string `json:"well_id" example:"7f2c1de0-53cb-4b21-a0c6-2dbe5fd1a111"`
	Assignee string `json:"assignee" example:"leo@andino.com"`
	Assigner string `json:"assigner" example:"ana@andino.com"`
	Status   string `json:"status" example:"pending"`
	Critical bool   `json:"critical" example:"true"`
	DueDate  string `json:"due_date" example:"2026-03-05T00:00:00Z"`
}

// TaskListResponse wraps the task list
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count" example:"5"`
}

// WellResponse represents one well with its current readings
type WellResponse struct {
	ID              string  `json:"id" example:"7f2c1de0-53cb-4b21-a0c6-2dbe5fd1a111"`
	Name            string  `json:"name" example:"Pozo Norte 1"`
	Status          string  `json:"status" example:"active"`
	Pressure        float64 `json:"pressure" example:"7200"`
	Temperature     float64 `json:"temperature" example:"62.5"`
	Flow            float64 `json:"flow" example:"480"`
	LevelPercentage float64 `json:"level_percentage" example:"73"`
}

// WellListResponse wraps the well list
type WellListResponse struct {
	Wells []WellResponse `json:"wells"`
	Count int            `json:"count" example:"4"`
}

// ThresholdResponse represents the limits in effect
type ThresholdResponse struct {
	PressureLimit    float64 `json:"pressure_limit" example:"8000"`
	TemperatureLimit float64 `json:"temperature_limit" example:"85"`
	FlowLimit        float64 `json:"flow_limit" example:"600"`
}

// SimulateWellResponse reports a single-well run
type SimulateWellResponse struct {
	Simulated bool `json:"simulated" example:"true"`
}

// SimulateAllResponse reports a bulk run
type SimulateAllResponse struct {
	Enabled   bool     `json:"enabled" example:"true"`
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// ReportResponse represents the report payload
type ReportResponse struct {
	WellName  string    `json:"pozo_nombre" example:"Pozo Norte 1"`
	Dates     []string  `json:"fechas"`
	Values    []float64 `json:"valores"`
	Parameter string    `json:"parametro" example:"pressure"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "WellWatch API",
		Version:     "v1.0.0",
		Description: "Well monitoring backend: alerts, maintenance tasks, threshold simulation and historical reports",
		Host:        "localhost:3000",
		Path:        "/api",
	})

	authErrors := []response.Response{
		response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing credentials"}, "401", "Unauthorized"),
		response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
	}

	endpoints := []*endpoint.EndPoint{
		endpoint.New(
			endpoint.POST,
			"/login",
			endpoint.WithTags("Auth"),
			endpoint.WithSummary("Exchange credentials for a JWT"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(LoginResponse{}, "200", "Authenticated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "RATE_LIMIT_EXCEEDED", Message: "Rate limit exceeded"}, "429", "Too Many Requests"),
			}),
		),

		endpoint.New(
			endpoint.GET,
			"/alerts",
			endpoint.WithTags("Alerts"),
			endpoint.WithSummary("List the actor's alerts"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("filter", parameter.Query, parameter.WithDescription("all, critical, warning or resolved (default: all)")),
				parameter.StrParam("pozo_id", parameter.Query, parameter.WithDescription("Narrow to one well")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AlertListResponse{}, "200", "Alerts retrieved"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.PUT,
			"/alerts/{id}/resolve",
			endpoint.WithTags("Alerts"),
			endpoint.WithSummary("Resolve one alert with evidence"),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Alert UUID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AlertResponse{}, "200", "Alert resolved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "ALERT_NOT_FOUND", Message: "Alert not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "WELL_NOT_ASSIGNED", Message: "Well is not assigned to this user"}, "403", "Forbidden"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.PUT,
			"/alerts/resolve-all",
			endpoint.WithTags("Alerts"),
			endpoint.WithSummary("Resolve every unresolved alert"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(BulkResolveResponse{}, "200", "Alerts resolved"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.DELETE,
			"/alerts/{id}",
			endpoint.WithTags("Alerts"),
			endpoint.WithSummary("Archive one alert into history and remove it"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Alert UUID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "204", "Alert archived and deleted"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "ALERT_NOT_FOUND", Message: "Alert not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "ARCHIVE_FAILED", Message: "Alerts could not be archived, nothing was deleted"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.DELETE,
			"/alerts/resolved",
			endpoint.WithTags("Alerts"),
			endpoint.WithSummary("Archive the resolved set and remove it"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(BulkArchiveResponse{}, "200", "Resolved alerts archived"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.GET,
			"/tasks",
			endpoint.WithTags("Tasks"),
			endpoint.WithSummary("List maintenance tasks"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("status", parameter.Query, parameter.WithDescription("pending, in_progress or resolved")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(TaskListResponse{}, "200", "Tasks retrieved"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.POST,
			"/tasks",
			endpoint.WithTags("Tasks"),
			endpoint.WithSummary("Create a maintenance task"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(TaskResponse{}, "201", "Task created"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Request validation failed"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "WELL_NOT_ASSIGNED", Message: "Well is not assigned to this user"}, "403", "Forbidden"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.PUT,
			"/tasks/{id}/status",
			endpoint.WithTags("Tasks"),
			endpoint.WithSummary("Transition a task (assignee only)"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Task UUID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(TaskResponse{}, "200", "Task updated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "TASK_NOT_FOUND", Message: "Task not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "NOT_ASSIGNEE", Message: "Only the task assignee may change its status"}, "403", "Forbidden"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.GET,
			"/wells",
			endpoint.WithTags("Wells"),
			endpoint.WithSummary("List the actor's wells"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(WellListResponse{}, "200", "Wells retrieved"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.GET,
			"/wells/{id}/thresholds",
			endpoint.WithTags("Thresholds"),
			endpoint.WithSummary("Limits in effect for one well"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Well UUID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ThresholdResponse{}, "200", "Thresholds retrieved"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.POST,
			"/wells/{id}/simulate",
			endpoint.WithTags("Simulation"),
			endpoint.WithSummary("Simulate readings and run the threshold check for one well"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Well UUID")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SimulateWellResponse{}, "200", "Run finished; simulated=false when the flag is off or the well is not assigned"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.POST,
			"/simulate",
			endpoint.WithTags("Simulation"),
			endpoint.WithSummary("Simulate every assigned well"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SimulateAllResponse{}, "200", "Run finished with per-well outcomes"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.POST,
			"/reportes",
			endpoint.WithTags("Reports"),
			endpoint.WithSummary("Build a historical series report"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ReportResponse{}, "200", "Report built"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Request validation failed"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "WELL_NOT_FOUND", Message: "Well not found"}, "404", "Not Found"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		endpoint.New(
			endpoint.GET,
			"/reportes/export",
			endpoint.WithTags("Reports"),
			endpoint.WithSummary("Download the report as XLSX"),
			endpoint.WithProduce([]mime.MIME{mime.MIME("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")}),
			endpoint.WithParams(
				parameter.StrParam("pozo_id", parameter.Query, parameter.WithDescription("Well UUID")),
				parameter.StrParam("fecha_inicio", parameter.Query, parameter.WithDescription("Range start (RFC3339)")),
				parameter.StrParam("fecha_fin", parameter.Query, parameter.WithDescription("Range end (RFC3339)")),
				parameter.StrParam("parametro", parameter.Query, parameter.WithDescription("pressure, temperature, flow or level")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "200", "Spreadsheet attachment"),
			}),
			endpoint.WithErrors(authErrors),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
