package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/domain/analytics"
	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.Repository {
	return &analyticsRepositoryImpl{db: db}
}

// GetHeadcount implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetHeadcount(ctx context.Context, asOf time.Time) (*analytics.HeadcountStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT location, COUNT(*)
		FROM employees
		WHERE join_date <= $1
		  AND (exit_date IS NULL OR exit_date > $1)
		GROUP BY location
		ORDER BY location
	`

	rows, err := q.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get headcount: %w", err)
	}
	defer rows.Close()

	stats := &analytics.HeadcountStats{}
	for rows.Next() {
		var lc analytics.LocationCount
		if err := rows.Scan(&lc.Location, &lc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan headcount row: %w", err)
		}
		stats.ByLocation = append(stats.ByLocation, lc)
		stats.Total += lc.Count
	}

	return stats, rows.Err()
}

// GetWorkforceChanges implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetWorkforceChanges(ctx context.Context, start, end time.Time) (*analytics.WorkforceChangeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN join_date >= $1 AND join_date <= $2 THEN 1 ELSE 0 END), 0) AS additions,
			COALESCE(SUM(CASE WHEN exit_date >= $1 AND exit_date <= $2 THEN 1 ELSE 0 END), 0) AS exits
		FROM employees
	`

	var stats analytics.WorkforceChangeStats
	if err := q.QueryRow(ctx, query, start, end).Scan(&stats.Additions, &stats.Exits); err != nil {
		return nil, fmt.Errorf("failed to get workforce changes: %w", err)
	}

	return &stats, nil
}

// GetLeaveDistribution implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetLeaveDistribution(ctx context.Context, start, end time.Time) ([]analytics.LeaveTypeCount, error) {
	q := GetQuerier(ctx, r.db)

	// Day counts are clamped to the requested period so a leave spanning
	// the boundary only contributes its in-period days.
	query := `
		SELECT leave_type,
			COUNT(*) AS requests,
			COALESCE(SUM(LEAST(end_date, $2::date) - GREATEST(start_date, $1::date) + 1), 0) AS days
		FROM leave_records
		WHERE approval_status = 'approved'
		  AND start_date <= $2
		  AND end_date >= $1
		GROUP BY leave_type
		ORDER BY days DESC, leave_type
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave distribution: %w", err)
	}
	defer rows.Close()

	var types []analytics.LeaveTypeCount
	for rows.Next() {
		var tc analytics.LeaveTypeCount
		if err := rows.Scan(&tc.LeaveType, &tc.Requests, &tc.Days); err != nil {
			return nil, fmt.Errorf("failed to scan leave distribution row: %w", err)
		}
		types = append(types, tc)
	}

	return types, rows.Err()
}

// GetRegularizationLeaders implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetRegularizationLeaders(ctx context.Context, start, end time.Time, limit int) ([]analytics.RegularizationLeader, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rr.employee_id, e.full_name, COUNT(*) AS requests
		FROM regularization_records rr
		JOIN employees e ON e.id = rr.employee_id
		WHERE rr.approval_status <> 'cancelled'
		  AND rr.date BETWEEN $1 AND $2
		GROUP BY rr.employee_id, e.full_name
		ORDER BY requests DESC, e.full_name
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get regularization leaders: %w", err)
	}
	defer rows.Close()

	var leaders []analytics.RegularizationLeader
	for rows.Next() {
		var l analytics.RegularizationLeader
		if err := rows.Scan(&l.EmployeeID, &l.EmployeeName, &l.Requests); err != nil {
			return nil, fmt.Errorf("failed to scan regularization leader: %w", err)
		}
		leaders = append(leaders, l)
	}

	return leaders, rows.Err()
}

// GetUnapprovedAbsences implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetUnapprovedAbsences(ctx context.Context, start, end time.Time) (int64, []analytics.EmployeeAbsenceCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.employee_id, e.full_name, COUNT(*) AS days
		FROM attendance_observations o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.status = $1
		  AND o.date BETWEEN $2 AND $3
		GROUP BY o.employee_id, e.full_name
		ORDER BY days DESC, e.full_name
	`

	rows, err := q.Query(ctx, query, attendance.StatusAbsent, start, end)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get unapproved absences: %w", err)
	}
	defer rows.Close()

	var (
		total      int64
		byEmployee []analytics.EmployeeAbsenceCount
	)
	for rows.Next() {
		var ac analytics.EmployeeAbsenceCount
		if err := rows.Scan(&ac.EmployeeID, &ac.EmployeeName, &ac.Days); err != nil {
			return 0, nil, fmt.Errorf("failed to scan absence count: %w", err)
		}
		byEmployee = append(byEmployee, ac)
		total += ac.Days
	}

	return total, byEmployee, rows.Err()
}

// GetSalaryByLocation implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetSalaryByLocation(ctx context.Context) ([]analytics.LocationSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT location, COUNT(*), COALESCE(AVG(base_salary), 0)
		FROM employees
		WHERE status = 'active' AND base_salary IS NOT NULL
		GROUP BY location
		ORDER BY location
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary by location: %w", err)
	}
	defer rows.Close()

	var locations []analytics.LocationSalary
	for rows.Next() {
		var ls analytics.LocationSalary
		if err := rows.Scan(&ls.Location, &ls.Employees, &ls.AverageSalary); err != nil {
			return nil, fmt.Errorf("failed to scan location salary: %w", err)
		}
		locations = append(locations, ls)
	}

	return locations, rows.Err()
}
