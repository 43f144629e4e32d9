package reconciliation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsight/hr-analytics-go/internal/config"
	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/domain/coverage"
	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
	"github.com/staffsight/hr-analytics-go/internal/domain/reconciliation"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
	listErr   error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) ListByLocations(ctx context.Context, locations []string) ([]employee.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []employee.Employee
	for _, e := range f.employees {
		for _, loc := range locations {
			if e.Location == loc {
				result = append(result, e)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) ListNoticeEnded(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListOnboardDue(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

type fakeObservationRepo struct {
	mu           sync.Mutex
	observations []attendance.Observation
	updateErrs   map[string]error // observation ID -> error
	updateCount  int
	listErr      error
}

func (f *fakeObservationRepo) ListAbsent(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Observation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var result []attendance.Observation
	for _, obs := range f.observations {
		if obs.Status == attendance.StatusAbsent && ids[obs.EmployeeID] &&
			!obs.Date.Before(start) && !obs.Date.After(end) {
			result = append(result, obs)
		}
	}
	return result, nil
}

func (f *fakeObservationRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Observation, int64, error) {
	return f.observations, int64(len(f.observations)), nil
}

func (f *fakeObservationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.updateErrs[id]; ok {
		return err
	}
	for i := range f.observations {
		if f.observations[i].ID == id {
			f.observations[i].Status = status
			f.updateCount++
			return nil
		}
	}
	return attendance.ErrObservationNotFound
}

func (f *fakeObservationRepo) statusOf(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, obs := range f.observations {
		if obs.ID == id {
			return obs.Status
		}
	}
	return ""
}

func (f *fakeObservationRepo) updates() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateCount
}

type fakeCoverageRepo struct {
	records []coverage.Record
	listErr error
}

func (f *fakeCoverageRepo) ListForRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]coverage.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		ids[id] = true
	}
	var result []coverage.Record
	for _, r := range f.records {
		if ids[r.EmployeeID] && !r.Date.Before(start) && !r.Date.After(end) {
			result = append(result, r)
		}
	}
	return result, nil
}

// expandLeave mirrors the SQL derivation: one coverage row per calendar day
// of the inclusive range.
func expandLeave(sourceID, employeeID, fromStr, toStr, leaveType string) []coverage.Record {
	from, to := day(fromStr), day(toStr)
	var records []coverage.Record
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		records = append(records, coverage.Record{
			SourceID:       sourceID,
			EmployeeID:     employeeID,
			Date:           d,
			Kind:           coverage.KindLeave,
			Label:          leaveType,
			ApprovalStatus: "approved",
		})
	}
	return records
}

// ===== TEST SETUP =====

const headOffice = "Head Office"

func testConfig() config.ReconciliationConfig {
	return config.ReconciliationConfig{
		EligibleLocations: []string{headOffice},
		Workers:           2,
	}
}

func headOfficeEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:           id,
		EmployeeCode: "EMP-" + id,
		FullName:     "Employee " + id,
		Location:     headOffice,
		Status:       employee.StatusActive,
		JoinDate:     day("2020-01-01"),
	}
}

func absentObservation(id, employeeID, dateStr string) attendance.Observation {
	return attendance.Observation{
		ID:         id,
		EmployeeID: employeeID,
		Date:       day(dateStr),
		Status:     attendance.StatusAbsent,
	}
}

// ===== ENGINE TESTS =====

func TestReconcile_MultiDayLeaveRewritesAllObservations(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}}
	obsRepo := &fakeObservationRepo{observations: []attendance.Observation{
		absentObservation("o1", "e1", "2024-01-10"),
		absentObservation("o2", "e1", "2024-01-11"),
		absentObservation("o3", "e1", "2024-01-12"),
	}}
	covRepo := &fakeCoverageRepo{records: expandLeave("l1", "e1", "2024-01-10", "2024-01-12", "Sick Leave")}

	svc := NewReconciliationService(empRepo, obsRepo, covRepo, testConfig())
	summary, err := svc.Reconcile(context.Background(), reconciliation.Request{
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, 3, summary.UpdatedCount)
	assert.Equal(t, 0, summary.UnapprovedCount)
	assert.Equal(t, 1, summary.EligiblePopulationCount)
	assert.Empty(t, summary.Failures)
	assert.NotEmpty(t, summary.RunID)

	for _, id := range []string{"o1", "o2", "o3"} {
		assert.Equal(t, "Sick Leave", obsRepo.statusOf(id))
	}
}

func TestReconcile_LeaveBeatsRegularization(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}}
	obsRepo := &fakeObservationRepo{observations: []attendance.Observation{
		absentObservation("o1", "e1", "2024-01-10"),
	}}
	covRepo := &fakeCoverageRepo{records: []coverage.Record{
		{SourceID: "r1", EmployeeID: "e1", Date: day("2024-01-10"), Kind: coverage.KindRegularization, Label: "Forgot Badge", ApprovalStatus: "approved"},
		{SourceID: "l1", EmployeeID: "e1", Date: day("2024-01-10"), Kind: coverage.KindLeave, Label: "Casual Leave", ApprovalStatus: "approved"},
	}}

	svc := NewReconciliationService(empRepo, obsRepo, covRepo, testConfig())
	summary, err := svc.Reconcile(context.Background(), reconciliation.Request{
		StartDate: day("2024-01-10"),
		EndDate:   day("2024-01-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.UpdatedCount)
	assert.Equal(t, "Casual Leave", obsRepo.statusOf("o1"))
}

func TestReconcile_NoCoverageCountsUnapproved(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}}
	obsRepo := &fakeObservationRepo{observations: []attendance.Observation{
		absentObservation("o1", "e1", "2024-01-10"),
		absentObservation("o2", "e1", "2024-01-11"),
	}}
	covRepo := &fakeCoverageRepo{}

	svc := NewReconciliationService(empRepo, obsRepo, covRepo, testConfig())
	summary, err := svc.Reconcile(context.Background(), reconciliation.Request{
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalProcessed)
	assert.Equal(t, 2, summary.UnapprovedCount)
	assert.Equal(t, 0, summary.UpdatedCount)
	assert.Equal(t, attendance.StatusAbsent, obsRepo.statusOf("o1"))
	assert.Equal(t, attendance.StatusAbsent, obsRepo.statusOf("o2"))
}

func TestReconcile_SecondRunIsNoOp(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}}
	obsRepo := &fakeObservationRepo{observations: []attendance.Observation{
		absentObservation("o1", "e1", "2024-01-10"),
		absentObservation("o2", "e1", "2024-01-15"),
	}}
	covRepo := &fakeCoverageRepo{records: expandLeave("l1", "e1", "2024-01-10", "2024-01-10", "Sick Leave")}

	svc := NewReconciliationService(empRepo, obsRepo, covRepo, testConfig())
	req := reconciliation.Request{StartDate: day("2024-01-01"), EndDate: day("2024-01-31")}

	first, err := svc.Reconcile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.UpdatedCount)
	assert.Equal(t, 1, first.UnapprovedCount)
	assert.Equal(t, 1, obsRepo.updates())

	second, err := svc.Reconcile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.UpdatedCount, "second run must write nothing")
	assert.Equal(t, 1, obsRepo.updates(), "no additional writes on re-run")

	// o1 is no longer "Absent", so only o2 is processed on the second pass
	assert.Equal(t, 1, second.TotalProcessed)
	assert.Equal(t, 1, second.UnapprovedCount)
}

func TestReconcile_IgnoresEmployeesOutsideEligibleLocations(t *testing.T) {
	remote := headOfficeEmployee("e2")
	remote.Location = "Remote Hub"

	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1"), remote}}
	obsRepo := &fakeObservationRepo{observations: []attendance.Observation{
		absentObservation("o1", "e1", "2024-01-10"),
		absentObservation("o2", "e2", "2024-01-10"),
	}}
	covRepo := &fakeCoverageRepo{records: append(
		expandLeave("l1", "e1", "2024-01-10", "2024-01-10", "Sick Leave"),
		expandLeave("l2", "e2", "2024-01-10", "2024-01-10", "Sick Leave")...,
	)}

	svc := NewReconciliationService(empRepo, obsRepo, covRepo, testConfig())
	summary, err := svc.Reconcile(context.Background(), reconciliation.Request{
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.EligiblePopulationCount)
	assert.Equal(t, 1, summary.TotalProcessed)
	assert.Equal(t, "Sick Leave", obsRepo.statusOf("o1"))
	assert.Equal(t, attendance.StatusAbsent, obsRepo.statusOf("o2"), "ineligible employee must never be written")
}

func TestReconcile_RowFailureDoesNotAbortRun(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}}
	obsRepo := &fakeObservationRepo{
		observations: []attendance.Observation{
			absentObservation("o1", "e1", "2024-01-10"),
			absentObservation("o2", "e1", "2024-01-11"),
		},
		updateErrs: map[string]error{"o1": errors.New("connection reset")},
	}
	covRepo := &fakeCoverageRepo{records: expandLeave("l1", "e1", "2024-01-10", "2024-01-11", "Sick Leave")}

	svc := NewReconciliationService(empRepo, obsRepo, covRepo, testConfig())
	summary, err := svc.Reconcile(context.Background(), reconciliation.Request{
		StartDate: day("2024-01-01"),
		EndDate:   day("2024-01-31"),
	})

	require.NoError(t, err, "per-row failures must not fail the run")
	assert.Equal(t, 1, summary.UpdatedCount)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "e1", summary.Failures[0].EmployeeID)
	assert.Equal(t, "2024-01-10", summary.Failures[0].Date)
	assert.Contains(t, summary.Failures[0].Error, "connection reset")
	assert.Equal(t, "Sick Leave", obsRepo.statusOf("o2"))
}

func TestReconcile_LoadFailureAbortsRun(t *testing.T) {
	boom := errors.New("db down")

	t.Run("population load", func(t *testing.T) {
		svc := NewReconciliationService(
			&fakeEmployeeRepo{listErr: boom},
			&fakeObservationRepo{},
			&fakeCoverageRepo{},
			testConfig(),
		)
		_, err := svc.Reconcile(context.Background(), reconciliation.Request{
			StartDate: day("2024-01-01"), EndDate: day("2024-01-31"),
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("observation load", func(t *testing.T) {
		svc := NewReconciliationService(
			&fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}},
			&fakeObservationRepo{listErr: boom},
			&fakeCoverageRepo{},
			testConfig(),
		)
		_, err := svc.Reconcile(context.Background(), reconciliation.Request{
			StartDate: day("2024-01-01"), EndDate: day("2024-01-31"),
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("coverage load", func(t *testing.T) {
		svc := NewReconciliationService(
			&fakeEmployeeRepo{employees: []employee.Employee{headOfficeEmployee("e1")}},
			&fakeObservationRepo{},
			&fakeCoverageRepo{listErr: boom},
			testConfig(),
		)
		_, err := svc.Reconcile(context.Background(), reconciliation.Request{
			StartDate: day("2024-01-01"), EndDate: day("2024-01-31"),
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestReconcile_RangeValidation(t *testing.T) {
	svc := NewReconciliationService(&fakeEmployeeRepo{}, &fakeObservationRepo{}, &fakeCoverageRepo{}, testConfig())

	t.Run("missing dates", func(t *testing.T) {
		_, err := svc.Reconcile(context.Background(), reconciliation.Request{})
		assert.ErrorIs(t, err, reconciliation.ErrMissingDates)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Reconcile(context.Background(), reconciliation.Request{
			StartDate: day("2024-01-31"), EndDate: day("2024-01-01"),
		})
		assert.ErrorIs(t, err, reconciliation.ErrInvalidDateRange)
	})

	t.Run("range too large", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxRangeDays = 31
		bounded := NewReconciliationService(&fakeEmployeeRepo{}, &fakeObservationRepo{}, &fakeCoverageRepo{}, cfg)

		_, err := bounded.Reconcile(context.Background(), reconciliation.Request{
			StartDate: day("2024-01-01"), EndDate: day("2024-03-01"),
		})
		assert.ErrorIs(t, err, reconciliation.ErrRangeTooLarge)

		_, err = bounded.Reconcile(context.Background(), reconciliation.Request{
			StartDate: day("2024-01-01"), EndDate: day("2024-01-31"),
		})
		assert.NoError(t, err, "exactly 31 days must pass")
	})
}

func TestReconcile_EmptyPopulation(t *testing.T) {
	svc := NewReconciliationService(&fakeEmployeeRepo{}, &fakeObservationRepo{}, &fakeCoverageRepo{}, testConfig())

	summary, err := svc.Reconcile(context.Background(), reconciliation.Request{
		StartDate: day("2024-01-01"), EndDate: day("2024-01-31"),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.EligiblePopulationCount)
	assert.Equal(t, 0, summary.TotalProcessed)
}
