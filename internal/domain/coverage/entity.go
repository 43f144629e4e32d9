package coverage

import (
	"time"
)

// Kind distinguishes the two coverage sources.
type Kind string

const (
	KindLeave          Kind = "leave"
	KindRegularization Kind = "regularization"
)

// Record is one day of justified absence for one employee: a normalized
// view over leave records (expanded to one row per day in their inclusive
// range) and regularization records (single day). Rejected leave and
// cancelled regularizations never appear here; they are filtered out at
// query time.
type Record struct {
	SourceID   string
	EmployeeID string
	Date       time.Time
	Kind       Kind
	// Label is the leave type or the regularization reason. It becomes
	// the observation status when this record wins resolution.
	Label          string
	ApprovalStatus string
}

// DayKey identifies the (employee, date) bucket a record belongs to.
func DayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

// Key returns the record's own (employee, date) bucket key.
func (r Record) Key() string {
	return DayKey(r.EmployeeID, r.Date)
}
