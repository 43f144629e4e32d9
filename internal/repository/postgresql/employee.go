package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_code, full_name, location, status, join_date, exit_date, base_salary, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Location, &emp.Status,
		&emp.JoinDate, &emp.ExitDate, &emp.BaseSalary, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Location != nil {
		where += fmt.Sprintf(" AND location = $%d", argPos)
		args = append(args, *filter.Location)
		argPos++
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM employees %s
		ORDER BY full_name, id
		LIMIT $%d OFFSET $%d
	`, employeeColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, rows.Err()
}

// ListByLocations implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByLocations(ctx context.Context, locations []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE location = ANY($1)
		ORDER BY id
	`, employeeColumns)

	rows, err := q.Query(ctx, query, locations)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by location: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// ListNoticeEnded implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListNoticeEnded(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return e.listByStatusAndThreshold(ctx, employee.StatusNoticePeriod, "exit_date", asOf)
}

// ListOnboardDue implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListOnboardDue(ctx context.Context, asOf time.Time) ([]employee.Employee, error) {
	return e.listByStatusAndThreshold(ctx, employee.StatusPendingOnboard, "join_date", asOf)
}

func (e *employeeRepositoryImpl) listByStatusAndThreshold(ctx context.Context, status employee.Status, dateColumn string, asOf time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	// dateColumn is a trusted constant, never caller input
	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE status = $1 AND %s <= $2
		ORDER BY id
	`, employeeColumns, dateColumn)

	rows, err := q.Query(ctx, query, status, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s employees: %w", status, err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update status for employee %s: %w", id, err)
	}

	return nil
}
