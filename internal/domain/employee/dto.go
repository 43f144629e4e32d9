package employee

import (
	"context"
	"time"
)

// ListFilter holds query filters for employee listing
type ListFilter struct {
	Status   *Status
	Location *string
	Page     int
	Limit    int
}

// LifecycleService runs the status lifecycle job: employees whose notice
// period has ended go inactive, onboarded employees go active. The as-of
// date is injected so runs are deterministic under test.
type LifecycleService interface {
	Run(ctx context.Context, asOf time.Time) ([]TransitionResult, error)
}

// TransitionResult reports the outcome of one attempted status transition.
// No row is skipped silently: every matching employee appears here.
type TransitionResult struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	NewStatus    string  `json:"new_status"`
	Success      bool    `json:"success"`
	Error        *string `json:"error,omitempty"`
}

// EmployeeResponse is the API representation of an employee
type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Location     string  `json:"location"`
	Status       string  `json:"status"`
	JoinDate     string  `json:"join_date"`
	ExitDate     *string `json:"exit_date,omitempty"`
	BaseSalary   *string `json:"base_salary,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Location:     e.Location,
		Status:       string(e.Status),
		JoinDate:     e.JoinDate.Format("2006-01-02"),
	}
	if e.ExitDate != nil {
		exit := e.ExitDate.Format("2006-01-02")
		resp.ExitDate = &exit
	}
	if e.BaseSalary != nil {
		salary := e.BaseSalary.StringFixed(2)
		resp.BaseSalary = &salary
	}
	return resp
}
