package http

import (
	"net/http"
	"time"

	"github.com/staffsight/hr-analytics-go/internal/domain/analytics"
	"github.com/staffsight/hr-analytics-go/internal/handler/http/response"
	"github.com/staffsight/hr-analytics-go/internal/pkg/validator"
)

type AnalyticsHandler interface {
	Headcount(w http.ResponseWriter, r *http.Request)
	WorkforceChanges(w http.ResponseWriter, r *http.Request)
	LeaveDistribution(w http.ResponseWriter, r *http.Request)
	RegularizationLeaders(w http.ResponseWriter, r *http.Request)
	UnapprovedAbsences(w http.ResponseWriter, r *http.Request)
	SalaryByLocation(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Headcount implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Headcount(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now().UTC()
	if s := r.URL.Query().Get("as_of"); s != "" {
		parsed, ok := validator.IsValidDate(s)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{{Field: "as_of", Message: "must be YYYY-MM-DD"}})
			return
		}
		asOf = parsed
	}

	result, err := h.analyticsService.Headcount(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WorkforceChanges implements AnalyticsHandler.
func (h *analyticsHandlerImpl) WorkforceChanges(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.WorkforceChanges(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LeaveDistribution implements AnalyticsHandler.
func (h *analyticsHandlerImpl) LeaveDistribution(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.LeaveDistribution(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RegularizationLeaders implements AnalyticsHandler.
func (h *analyticsHandlerImpl) RegularizationLeaders(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	limit := parseIntQuery(r, "limit", 5)

	result, err := h.analyticsService.RegularizationLeaders(r.Context(), start, end, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UnapprovedAbsences implements AnalyticsHandler.
func (h *analyticsHandlerImpl) UnapprovedAbsences(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.UnapprovedAbsences(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SalaryByLocation implements AnalyticsHandler.
func (h *analyticsHandlerImpl) SalaryByLocation(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.SalaryByLocation(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parsePeriod reads the required start/end query params. It writes the
// error response itself and returns ok=false when they are missing or
// malformed.
func parsePeriod(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	var errs validator.ValidationErrors
	if validator.IsEmpty(startStr) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "is required"})
	}
	if validator.IsEmpty(endStr) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "is required"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return time.Time{}, time.Time{}, false
	}

	start, end, ok := validator.IsValidDateRange(startStr, endStr)
	if !ok {
		response.HandleError(w, validator.ValidationErrors{{Field: "start/end", Message: "must be YYYY-MM-DD with end on or after start"}})
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
