package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffsight/hr-analytics-go/internal/config"
	"github.com/staffsight/hr-analytics-go/internal/handler/http/middleware"
	"github.com/staffsight/hr-analytics-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	reconciliationHandler ReconciliationHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-analytics"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Headless job triggers for external schedulers
		r.Route("/internal/jobs", func(r chi.Router) {
			r.Use(middleware.APIKeyRequired(cfg.Scheduler.APIKeyHash))
			r.Post("/reconciliation", reconciliationHandler.Run)
			r.Post("/lifecycle", employeeHandler.RunLifecycle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/reconciliation", func(r chi.Router) {
				r.Post("/run", reconciliationHandler.Run)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/lifecycle/run", employeeHandler.RunLifecycle)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/headcount", analyticsHandler.Headcount)
				r.Get("/workforce-changes", analyticsHandler.WorkforceChanges)
				r.Get("/leave-distribution", analyticsHandler.LeaveDistribution)
				r.Get("/regularization-leaders", analyticsHandler.RegularizationLeaders)
				r.Get("/unapproved-absences", analyticsHandler.UnapprovedAbsences)
				r.Get("/salary-by-location", analyticsHandler.SalaryByLocation)
			})
		})
	})

	return r
}
