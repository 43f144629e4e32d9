package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffsight/hr-analytics-go/internal/domain/reconciliation"
	"github.com/staffsight/hr-analytics-go/internal/handler/http/response"
	"github.com/staffsight/hr-analytics-go/internal/pkg/validator"
)

type ReconciliationHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type reconciliationHandlerImpl struct {
	reconciliationService reconciliation.Service
}

func NewReconciliationHandler(reconciliationService reconciliation.Service) ReconciliationHandler {
	return &reconciliationHandlerImpl{
		reconciliationService: reconciliationService,
	}
}

type runReconciliationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Run implements ReconciliationHandler.
func (h *reconciliationHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req runReconciliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(req.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	}
	if validator.IsEmpty(req.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	start, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		response.HandleError(w, validator.ValidationErrors{{Field: "start_date", Message: "must be YYYY-MM-DD"}})
		return
	}
	end, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		response.HandleError(w, validator.ValidationErrors{{Field: "end_date", Message: "must be YYYY-MM-DD"}})
		return
	}

	summary, err := h.reconciliationService.Reconcile(r.Context(), reconciliation.Request{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reconciliation completed", summary)
}
