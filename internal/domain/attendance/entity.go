package attendance

import (
	"time"
)

// StatusAbsent is the raw biometric label the reconciliation engine acts
// on. Every other status passes through untouched.
const StatusAbsent = "Absent"

// Observation is one biometric-derived attendance row per (employee, date).
// Rows are created by the spreadsheet import and overwritten by the
// reconciliation engine.
type Observation struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
