package http

import (
	"encoding/json"
	"net/http"

	"github.com/das-hq/duty-backend-go/internal/domain/change"
	"github.com/das-hq/duty-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ChangeHandler interface {
	RecordChange(w http.ResponseWriter, r *http.Request)
	ListByAssignment(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
}

type changeHandlerImpl struct {
	changeService change.ChangeService
}

func NewChangeHandler(changeService change.ChangeService) ChangeHandler {
	return &changeHandlerImpl{changeService: changeService}
}

// RecordChange implements ChangeHandler
func (h *changeHandlerImpl) RecordChange(w http.ResponseWriter, r *http.Request) {
	var req change.RecordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.changeService.RecordChange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Duty change recorded", result)
}

// ListByAssignment implements ChangeHandler
func (h *changeHandlerImpl) ListByAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")
	if assignmentID == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	results, err := h.changeService.ListByAssignment(r.Context(), assignmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListMonth implements ChangeHandler
func (h *changeHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	results, err := h.changeService.ListMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
