package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
)

type observationRepositoryImpl struct {
	db *database.DB
}

func NewObservationRepository(db *database.DB) attendance.ObservationRepository {
	return &observationRepositoryImpl{db: db}
}

// ListAbsent implements attendance.ObservationRepository.
func (o *observationRepositoryImpl) ListAbsent(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Observation, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance_observations
		WHERE employee_id = ANY($1)
		  AND date BETWEEN $2 AND $3
		  AND status = $4
		ORDER BY employee_id, date
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end, attendance.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("failed to list absent observations: %w", err)
	}
	defer rows.Close()

	var observations []attendance.Observation
	for rows.Next() {
		var obs attendance.Observation
		if err := rows.Scan(&obs.ID, &obs.EmployeeID, &obs.Date, &obs.Status, &obs.CreatedAt, &obs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// List implements attendance.ObservationRepository.
func (o *observationRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Observation, int64, error) {
	q := GetQuerier(ctx, o.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND o.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Start != nil {
		where += fmt.Sprintf(" AND o.date >= $%d", argPos)
		args = append(args, *filter.Start)
		argPos++
	}
	if filter.End != nil {
		where += fmt.Sprintf(" AND o.date <= $%d", argPos)
		args = append(args, *filter.End)
		argPos++
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance_observations o %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count observations: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 31
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT o.id, o.employee_id, o.date, o.status, o.created_at, o.updated_at, e.full_name
		FROM attendance_observations o
		JOIN employees e ON e.id = o.employee_id
		%s
		ORDER BY o.date DESC, o.employee_id
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	var observations []attendance.Observation
	for rows.Next() {
		var obs attendance.Observation
		if err := rows.Scan(&obs.ID, &obs.EmployeeID, &obs.Date, &obs.Status, &obs.CreatedAt, &obs.UpdatedAt, &obs.EmployeeName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, obs)
	}

	return observations, total, rows.Err()
}

// UpdateStatus implements attendance.ObservationRepository.
func (o *observationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE attendance_observations
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrObservationNotFound
		}
		return fmt.Errorf("failed to update observation %s: %w", id, err)
	}

	return nil
}
