package reconciliation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/staffsight/hr-analytics-go/internal/config"
	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/domain/coverage"
	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
	"github.com/staffsight/hr-analytics-go/internal/domain/reconciliation"
)

type service struct {
	employeeRepo    employee.EmployeeRepository
	observationRepo attendance.ObservationRepository
	coverageRepo    coverage.Repository
	cfg             config.ReconciliationConfig
}

func NewReconciliationService(
	employeeRepo employee.EmployeeRepository,
	observationRepo attendance.ObservationRepository,
	coverageRepo coverage.Repository,
	cfg config.ReconciliationConfig,
) reconciliation.Service {
	return &service{
		employeeRepo:    employeeRepo,
		observationRepo: observationRepo,
		coverageRepo:    coverageRepo,
		cfg:             cfg,
	}
}

// Reconcile implements reconciliation.Service.
//
// Load failures abort the run with no partial commit. Per-row update
// failures are logged, collected into the summary and skipped: every
// observation is independent, and a re-run over the same range converges
// (only rows whose label actually changes are written).
func (s *service) Reconcile(ctx context.Context, req reconciliation.Request) (reconciliation.Summary, error) {
	start, end, err := s.validateRange(req)
	if err != nil {
		return reconciliation.Summary{}, err
	}

	slog.Info("Reconciliation: starting run",
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
		"locations", s.cfg.EligibleLocations)

	employees, err := s.employeeRepo.ListByLocations(ctx, s.cfg.EligibleLocations)
	if err != nil {
		return reconciliation.Summary{}, fmt.Errorf("failed to load eligible population: %w", err)
	}

	summary := reconciliation.Summary{
		RunID:                   uuid.NewString(),
		EligiblePopulationCount: len(employees),
		UpdatedAt:               time.Now().UTC(),
	}

	if len(employees) == 0 {
		slog.Info("Reconciliation: no eligible employees, nothing to do")
		return summary, nil
	}

	employeeIDs := make([]string, len(employees))
	for i, emp := range employees {
		employeeIDs[i] = emp.ID
	}

	observations, err := s.observationRepo.ListAbsent(ctx, employeeIDs, start, end)
	if err != nil {
		return reconciliation.Summary{}, fmt.Errorf("failed to load absent observations: %w", err)
	}

	records, err := s.coverageRepo.ListForRange(ctx, employeeIDs, start, end)
	if err != nil {
		return reconciliation.Summary{}, fmt.Errorf("failed to load coverage records: %w", err)
	}

	// Index coverage by (employee, date) so each observation resolves in
	// constant time instead of scanning every record.
	index := make(map[string][]coverage.Record, len(records))
	for _, r := range records {
		key := r.Key()
		index[key] = append(index[key], r)
	}

	// Partition by employee: keys never overlap between partitions, so
	// workers need no coordination beyond the shared counters.
	byEmployee := make(map[string][]attendance.Observation)
	for _, obs := range observations {
		byEmployee[obs.EmployeeID] = append(byEmployee[obs.EmployeeID], obs)
	}

	summary.TotalProcessed = len(observations)

	var (
		counters countersGuard
		g        errgroup.Group
	)
	g.SetLimit(s.cfg.Workers)

	for empID, empObservations := range byEmployee {
		empID, empObservations := empID, empObservations
		g.Go(func() error {
			for _, obs := range empObservations {
				res := Resolve(index[coverage.DayKey(empID, obs.Date)])
				if res.Unapproved {
					counters.addUnapproved()
				}
				if res.Label == obs.Status {
					continue
				}
				if err := s.observationRepo.UpdateStatus(ctx, obs.ID, res.Label); err != nil {
					slog.Error("Reconciliation: failed to update observation",
						"employee_id", empID,
						"date", obs.Date.Format("2006-01-02"),
						"error", err)
					counters.addFailure(reconciliation.RowFailure{
						EmployeeID: empID,
						Date:       obs.Date.Format("2006-01-02"),
						Error:      err.Error(),
					})
					continue
				}
				counters.addUpdated()
			}
			return nil
		})
	}

	// Workers swallow per-row errors, so Wait only reflects pool shutdown.
	_ = g.Wait()

	summary.UnapprovedCount, summary.UpdatedCount, summary.Failures = counters.snapshot()
	summary.UpdatedAt = time.Now().UTC()

	slog.Info("Reconciliation: run complete",
		"run_id", summary.RunID,
		"total_processed", summary.TotalProcessed,
		"updated", summary.UpdatedCount,
		"unapproved", summary.UnapprovedCount,
		"failures", len(summary.Failures),
		"population", summary.EligiblePopulationCount)

	return summary, nil
}

func (s *service) validateRange(req reconciliation.Request) (time.Time, time.Time, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return time.Time{}, time.Time{}, reconciliation.ErrMissingDates
	}

	start := truncateToDay(req.StartDate)
	end := truncateToDay(req.EndDate)

	if end.Before(start) {
		return time.Time{}, time.Time{}, reconciliation.ErrInvalidDateRange
	}

	if s.cfg.MaxRangeDays > 0 {
		days := int(end.Sub(start).Hours()/24) + 1
		if days > s.cfg.MaxRangeDays {
			return time.Time{}, time.Time{}, reconciliation.ErrRangeTooLarge
		}
	}

	return start, end, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
