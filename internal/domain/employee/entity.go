package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Location     string
	Status       Status
	JoinDate     time.Time
	ExitDate     *time.Time
	BaseSalary   *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive         Status = "active"
	StatusNoticePeriod   Status = "notice_period"
	StatusInactive       Status = "inactive"
	StatusPendingOnboard Status = "pending_onboard"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusNoticePeriod, StatusInactive, StatusPendingOnboard:
		return true
	}
	return false
}
