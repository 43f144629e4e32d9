package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/config"
	appHTTP "github.com/staffsight/hr-analytics-go/internal/handler/http"
	"github.com/staffsight/hr-analytics-go/internal/pkg/cron"
	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
	"github.com/staffsight/hr-analytics-go/internal/pkg/jwt"
	"github.com/staffsight/hr-analytics-go/internal/repository/postgresql"
	analyticsService "github.com/staffsight/hr-analytics-go/internal/service/analytics"
	lifecycleService "github.com/staffsight/hr-analytics-go/internal/service/lifecycle"
	reconciliationService "github.com/staffsight/hr-analytics-go/internal/service/reconciliation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	observationRepo := postgresql.NewObservationRepository(db)
	coverageRepo := postgresql.NewCoverageRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	reconciliationSvc := reconciliationService.NewReconciliationService(
		employeeRepo,
		observationRepo,
		coverageRepo,
		cfg.Reconciliation,
	)
	lifecycleSvc := lifecycleService.NewLifecycleService(employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)

	reconciliationHandler := appHTTP.NewReconciliationHandler(reconciliationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo, lifecycleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(observationRepo)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		reconciliationHandler,
		employeeHandler,
		attendanceHandler,
		analyticsHandler,
	)

	if cfg.Cron.Enabled {
		interval, err := time.ParseDuration(cfg.Cron.Interval)
		if err != nil {
			fmt.Println("Invalid CRON_INTERVAL:", err)
			return
		}
		scheduler := cron.NewScheduler()
		hrJobs := cron.NewHRJobs(reconciliationSvc, lifecycleSvc)
		hrJobs.RegisterJobs(scheduler, interval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
