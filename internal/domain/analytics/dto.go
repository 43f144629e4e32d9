package analytics

import (
	"github.com/shopspring/decimal"
)

// ========== HEADCOUNT ==========

// LocationCount is one location's share of the headcount
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// HeadcountResponse is the headcount snapshot as of a date
type HeadcountResponse struct {
	AsOf       string          `json:"as_of"` // Format: "YYYY-MM-DD"
	Total      int64           `json:"total"`
	ByLocation []LocationCount `json:"by_location"`
}

// ========== WORKFORCE CHANGES (additions/exits bar chart) ==========

type WorkforceChangesResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Additions int64  `json:"additions"`
	Exits     int64  `json:"exits"`
}

// ========== LEAVE DISTRIBUTION (pie chart) ==========

// LeaveTypeCount aggregates approved leave per type in a period
type LeaveTypeCount struct {
	LeaveType string `json:"leave_type"`
	Requests  int64  `json:"requests"`
	Days      int64  `json:"days"`
}

type LeaveDistributionResponse struct {
	Start string           `json:"start"`
	End   string           `json:"end"`
	Types []LeaveTypeCount `json:"types"`
}

// ========== REGULARIZATION LEADERS ==========

type RegularizationLeader struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Requests     int64  `json:"requests"`
}

type RegularizationLeadersResponse struct {
	Start   string                 `json:"start"`
	End     string                 `json:"end"`
	Leaders []RegularizationLeader `json:"leaders"`
}

// ========== UNAPPROVED ABSENCES ==========

// EmployeeAbsenceCount counts "Absent" observations left standing after
// reconciliation. The definition of unapproved is the engine's: an absence
// no surviving coverage rewrote.
type EmployeeAbsenceCount struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Days         int64  `json:"days"`
}

type UnapprovedAbsencesResponse struct {
	Start      string                 `json:"start"`
	End        string                 `json:"end"`
	Total      int64                  `json:"total"`
	ByEmployee []EmployeeAbsenceCount `json:"by_employee"`
}

// ========== SALARY BY LOCATION ==========

type LocationSalary struct {
	Location      string          `json:"location"`
	Employees     int64           `json:"employees"`
	AverageSalary decimal.Decimal `json:"average_salary"`
}

type SalaryByLocationResponse struct {
	Locations []LocationSalary `json:"locations"`
}
