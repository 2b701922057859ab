package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/andino-energia/wellwatch/internal/api/docs"
	"github.com/andino-energia/wellwatch/internal/api/handler"
	"github.com/andino-energia/wellwatch/internal/api/middleware"
	"github.com/andino-energia/wellwatch/internal/auth"
	"github.com/andino-energia/wellwatch/internal/repository"
	"github.com/andino-energia/wellwatch/internal/service"
	"github.com/andino-energia/wellwatch/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Dependencies struct {
	DB       *pgxpool.Pool
	JWT      *auth.JWTService
	Uploader storage.Uploader
}

type Router struct {
	app          *fiber.App
	logger       *slog.Logger
	deps         *Dependencies
	loginLimiter *middleware.RateLimiter
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "WellWatch API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	var pinger handler.DBPinger
	if r.deps != nil && r.deps.DB != nil {
		pinger = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(pinger)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	if r.deps == nil {
		return
	}

	api := r.app.Group("/api")

	// Repositories
	wellRepo := repository.NewWellRepository(r.deps.DB)
	alertRepo := repository.NewAlertRepository(r.deps.DB)
	taskRepo := repository.NewTaskRepository(r.deps.DB)
	thresholdRepo := repository.NewThresholdRepository(r.deps.DB)
	userRepo := repository.NewUserRepository(r.deps.DB)
	reportRepo := repository.NewReportRepository(r.deps.DB)

	guard := auth.NewGuard(wellRepo)

	// Services
	alertService := service.NewAlertService(alertRepo, guard, r.deps.Uploader, r.logger)
	taskService := service.NewTaskService(taskRepo, guard, r.deps.Uploader, r.logger)
	wellService := service.NewWellService(wellRepo, guard, r.logger)
	thresholdService := service.NewThresholdService(thresholdRepo, guard, r.logger)
	simulationService := service.NewSimulationService(wellRepo, userRepo, r.logger)
	reportService := service.NewReportService(reportRepo, guard, r.logger)

	// Handlers
	authHandler := handler.NewAuthHandler(userRepo, r.deps.JWT, r.logger)
	alertHandler := handler.NewAlertHandler(alertService, r.logger)
	taskHandler := handler.NewTaskHandler(taskService, r.logger)
	wellHandler := handler.NewWellHandler(wellService, r.logger)
	thresholdHandler := handler.NewThresholdHandler(thresholdService, r.logger)
	simulationHandler := handler.NewSimulationHandler(simulationService, r.logger)
	reportHandler := handler.NewReportHandler(reportService, r.logger)

	// Public routes; the login limiter slows down credential guessing
	r.loginLimiter = middleware.NewRateLimiter(middleware.LoginRateLimiterConfig())
	api.Post("/login", r.loginLimiter.Handler(), authHandler.Login)
	api.Post("/forgot-password", authHandler.ForgotPassword)

	// Everything below requires a valid token
	api.Use(middleware.Auth(r.deps.JWT, r.logger))

	// Alerts. Fixed paths are registered before /:id routes so they are
	// not captured as IDs.
	api.Put("/alerts/resolve-all", alertHandler.ResolveAll)
	api.Delete("/alerts/resolved", alertHandler.DeleteResolved)
	api.Get("/alerts", alertHandler.List)
	api.Put("/alerts/:id/resolve", alertHandler.Resolve)
	api.Delete("/alerts/:id", alertHandler.Delete)

	// Tasks
	api.Get("/tasks", taskHandler.List)
	api.Post("/tasks", taskHandler.Create)
	api.Get("/tasks/:id", taskHandler.Get)
	api.Put("/tasks/:id/status", taskHandler.UpdateStatus)
	api.Put("/tasks/:id/resolve", taskHandler.Resolve)
	api.Get("/tasks/:id/history", taskHandler.History)

	// Wells
	api.Get("/wells", wellHandler.List)
	api.Get("/wells/:id", wellHandler.Get)
	api.Put("/wells/:id/readings", wellHandler.UpdateReadings)

	// Thresholds
	api.Get("/thresholds", thresholdHandler.Defaults)
	api.Put("/thresholds", thresholdHandler.SaveDefaults)
	api.Get("/wells/:id/thresholds", thresholdHandler.ForWell)
	api.Put("/wells/:id/thresholds", thresholdHandler.SaveForWell)

	// Simulation
	api.Post("/wells/:id/simulate", simulationHandler.SimulateWell)
	api.Post("/simulate", simulationHandler.SimulateAll)
	api.Put("/simulation", simulationHandler.SetEnabled)

	// Reports
	api.Post("/reportes", reportHandler.Build)
	api.Get("/reportes/export", reportHandler.Export)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests,
// up to shutdownTimeout. It returns as soon as draining finishes.
func (r *Router) Shutdown() error {
	if r.loginLimiter != nil {
		r.loginLimiter.Stop()
	}

	return r.app.ShutdownWithTimeout(shutdownTimeout)
}
