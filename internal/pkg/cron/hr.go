package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
	"github.com/staffsight/hr-analytics-go/internal/domain/reconciliation"
)

// HRJobs bundles the two nightly batch jobs: attendance reconciliation for
// yesterday and the employee status lifecycle pass for today.
type HRJobs struct {
	reconciliationSvc reconciliation.Service
	lifecycleSvc      employee.LifecycleService
}

func NewHRJobs(
	reconciliationSvc reconciliation.Service,
	lifecycleSvc employee.LifecycleService,
) *HRJobs {
	return &HRJobs{
		reconciliationSvc: reconciliationSvc,
		lifecycleSvc:      lifecycleSvc,
	}
}

func (j *HRJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("nightly_reconciliation", interval, j.ReconcileYesterday)
	scheduler.AddJob("employee_status_transitions", interval, j.TransitionStatuses)
}

// ReconcileYesterday reconciles yesterday's attendance once per night.
func (j *HRJobs) ReconcileYesterday(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	summary, err := j.reconciliationSvc.Reconcile(ctx, reconciliation.Request{
		StartDate: yesterday,
		EndDate:   yesterday,
	})
	if err != nil {
		return err
	}

	slog.Info("Cron: nightly reconciliation finished",
		"run_id", summary.RunID,
		"processed", summary.TotalProcessed,
		"updated", summary.UpdatedCount,
		"unapproved", summary.UnapprovedCount)
	return nil
}

// TransitionStatuses flips lifecycle statuses that came due today.
func (j *HRJobs) TransitionStatuses(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	results, err := j.lifecycleSvc.Run(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	slog.Info("Cron: status transitions finished", "total", len(results), "failed", failed)
	return nil
}
