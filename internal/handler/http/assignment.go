package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	ListMonth(w http.ResponseWriter, r *http.Request)
	NextAssignee(w http.ResponseWriter, r *http.Request)
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
	GenerateMonth(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &assignmentHandlerImpl{assignmentService: assignmentService}
}

// parseYearMonth reads the ?year= and ?month= query parameters shared by the
// month-scoped endpoints.
func parseYearMonth(r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, false
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// ListMonth implements AssignmentHandler
func (h *assignmentHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	results, err := h.assignmentService.ListMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// NextAssignee implements AssignmentHandler
func (h *assignmentHandlerImpl) NextAssignee(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	category := r.URL.Query().Get("day_category")
	if !assignment.ValidRole(role) {
		response.BadRequest(w, "role must be 'main' or 'sub'", nil)
		return
	}
	if !assignment.ValidDayCategory(category) {
		response.BadRequest(w, "day_category must be 'holiday' or 'weekday'", nil)
		return
	}

	result, err := h.assignmentService.NextAssignee(r.Context(), assignment.DutyRole(role), assignment.DayCategory(category))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateAssignment implements AssignmentHandler
func (h *assignmentHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Duty assignment created", result)
}

// UpdateAssignment implements AssignmentHandler
func (h *assignmentHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	var req assignment.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.assignmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAssignment implements AssignmentHandler
func (h *assignmentHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Duty assignment deleted", nil)
}

// GenerateMonth implements AssignmentHandler
func (h *assignmentHandlerImpl) GenerateMonth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Year < 2000 || req.Year > 2100 || req.Month < 1 || req.Month > 12 {
		response.BadRequest(w, "year and month are required", nil)
		return
	}

	results, err := h.assignmentService.GenerateMonth(r.Context(), req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
