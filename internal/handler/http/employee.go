package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffsight/hr-analytics-go/internal/domain/employee"
	"github.com/staffsight/hr-analytics-go/internal/handler/http/response"
	"github.com/staffsight/hr-analytics-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	RunLifecycle(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo     employee.EmployeeRepository
	lifecycleService employee.LifecycleService
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository, lifecycleService employee.LifecycleService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo:     employeeRepo,
		lifecycleService: lifecycleService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListFilter{
		Page:  parseIntQuery(r, "page", 1),
		Limit: parseIntQuery(r, "limit", 20),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := employee.Status(s)
		if !status.Valid() {
			response.HandleError(w, employee.ErrInvalidStatus)
			return
		}
		filter.Status = &status
	}
	if loc := r.URL.Query().Get("location"); loc != "" {
		filter.Location = &loc
	}

	employees, total, err := h.employeeRepo.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		items = append(items, employee.ToResponse(emp))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, validator.ValidationErrors{{Field: "id", Message: "must be a valid UUID"}})
		return
	}

	emp, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}

type runLifecycleRequest struct {
	AsOf string `json:"as_of"`
}

// RunLifecycle implements EmployeeHandler.
func (h *employeeHandlerImpl) RunLifecycle(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now().UTC()

	var req runLifecycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.AsOf != "" {
		parsed, ok := validator.IsValidDate(req.AsOf)
		if !ok {
			response.HandleError(w, validator.ValidationErrors{{Field: "as_of", Message: "must be YYYY-MM-DD"}})
			return
		}
		asOf = parsed
	}

	results, err := h.lifecycleService.Run(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lifecycle transitions completed", results)
}

func parseIntQuery(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
