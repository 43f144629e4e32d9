package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
)

// TestDatabaseSetup wires repository tests to a real Postgres instance.
// Tests are skipped unless TEST_DATABASE_URL is set.
type TestDatabaseSetup struct {
	DB *database.DB
}

func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	if err := setup.ApplyMigrations(context.Background()); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return setup
}

// ApplyMigrations runs the schema file so tests work on a fresh database.
func (s *TestDatabaseSetup) ApplyMigrations(ctx context.Context) error {
	_, thisFile, _, _ := runtime.Caller(0)
	schemaPath := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "..", "migrations", "0001_init.sql")

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	if _, err := s.DB.Exec(ctx, string(schema)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// TruncateAllTables clears all data between tests
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"attendance_observations",
		"leave_records",
		"regularization_records",
		"employees",
	}

	for _, table := range tables {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// CreateEmployee inserts a test employee and returns its id
func (s *TestDatabaseSetup) CreateEmployee(ctx context.Context, code, name, location, status, joinDate string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
		INSERT INTO employees (employee_code, full_name, location, status, join_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, code, name, location, status, joinDate).Scan(&id)
	return id, err
}

// CreateObservation inserts a test attendance observation and returns its id
func (s *TestDatabaseSetup) CreateObservation(ctx context.Context, employeeID, date, status string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
		INSERT INTO attendance_observations (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, employeeID, date, status).Scan(&id)
	return id, err
}

// CreateLeaveRecord inserts a test leave record and returns its id
func (s *TestDatabaseSetup) CreateLeaveRecord(ctx context.Context, employeeID, startDate, endDate, leaveType, approvalStatus string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
		INSERT INTO leave_records (employee_id, start_date, end_date, leave_type, approval_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, employeeID, startDate, endDate, leaveType, approvalStatus).Scan(&id)
	return id, err
}

// CreateRegularization inserts a test regularization record and returns its id
func (s *TestDatabaseSetup) CreateRegularization(ctx context.Context, employeeID, date, reason, approvalStatus string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
		INSERT INTO regularization_records (employee_id, date, reason, approval_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, employeeID, date, reason, approvalStatus).Scan(&id)
	return id, err
}
