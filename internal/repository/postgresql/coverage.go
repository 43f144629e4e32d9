package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/domain/coverage"
	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
)

type coverageRepositoryImpl struct {
	db *database.DB
}

func NewCoverageRepository(db *database.DB) coverage.Repository {
	return &coverageRepositoryImpl{db: db}
}

// ListForRange implements coverage.Repository.
//
// Coverage is derived on the fly: leave records expand to one row per
// calendar day of their inclusive range (clamped to the requested window),
// regularizations contribute their single day. Rejected leave and cancelled
// regularizations are excluded here so the resolver never sees them.
func (c *coverageRepositoryImpl) ListForRange(ctx context.Context, employeeIDs []string, start, end time.Time) ([]coverage.Record, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT l.id, l.employee_id, d.day::date, 'leave', l.leave_type, l.approval_status
		FROM leave_records l
		CROSS JOIN LATERAL generate_series(
			GREATEST(l.start_date, $2::date),
			LEAST(l.end_date, $3::date),
			interval '1 day'
		) AS d(day)
		WHERE l.employee_id = ANY($1)
		  AND l.approval_status <> 'rejected'
		  AND l.start_date <= $3
		  AND l.end_date >= $2

		UNION ALL

		SELECT r.id, r.employee_id, r.date, 'regularization', r.reason, r.approval_status
		FROM regularization_records r
		WHERE r.employee_id = ANY($1)
		  AND r.approval_status <> 'cancelled'
		  AND r.date BETWEEN $2 AND $3

		ORDER BY 2, 3, 4, 1
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list coverage records: %w", err)
	}
	defer rows.Close()

	var records []coverage.Record
	for rows.Next() {
		var (
			rec  coverage.Record
			kind string
		)
		if err := rows.Scan(&rec.SourceID, &rec.EmployeeID, &rec.Date, &kind, &rec.Label, &rec.ApprovalStatus); err != nil {
			return nil, fmt.Errorf("failed to scan coverage record: %w", err)
		}
		rec.Kind = coverage.Kind(kind)
		records = append(records, rec)
	}

	return records, rows.Err()
}
