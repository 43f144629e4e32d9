package http

import (
	"net/http"

	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/handler/http/response"
	"github.com/staffsight/hr-analytics-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	observationRepo attendance.ObservationRepository
}

func NewAttendanceHandler(observationRepo attendance.ObservationRepository) AttendanceHandler {
	return &attendanceHandlerImpl{
		observationRepo: observationRepo,
	}
}

type observationResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 31),
	}

	if empID := r.URL.Query().Get("employee_id"); empID != "" {
		if !validator.IsValidUUID(empID) {
			response.HandleError(w, validator.ValidationErrors{{Field: "employee_id", Message: "must be a valid UUID"}})
			return
		}
		filter.EmployeeID = &empID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if s := r.URL.Query().Get("start"); s != "" {
		parsed, ok := validator.IsValidDate(s)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{{Field: "start", Message: "must be YYYY-MM-DD"}})
			return
		}
		filter.Start = &parsed
	}
	if s := r.URL.Query().Get("end"); s != "" {
		parsed, ok := validator.IsValidDate(s)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{{Field: "end", Message: "must be YYYY-MM-DD"}})
			return
		}
		filter.End = &parsed
	}

	observations, total, err := h.observationRepo.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]observationResponse, 0, len(observations))
	for _, obs := range observations {
		items = append(items, observationResponse{
			ID:           obs.ID,
			EmployeeID:   obs.EmployeeID,
			EmployeeName: obs.EmployeeName,
			Date:         obs.Date.Format("2006-01-02"),
			Status:       obs.Status,
		})
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}
