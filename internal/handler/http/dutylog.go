package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/dutylog"
	"github.com/das-hq/duty-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LogHandler interface {
	SaveLog(w http.ResponseWriter, r *http.Request)
	GetLog(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	RequestApproval(w http.ResponseWriter, r *http.Request)
	ApproveLog(w http.ResponseWriter, r *http.Request)
	RejectLog(w http.ResponseWriter, r *http.Request)
}

type logHandlerImpl struct {
	logService dutylog.LogService
}

func NewLogHandler(logService dutylog.LogService) LogHandler {
	return &logHandlerImpl{logService: logService}
}

// SaveLog implements LogHandler
func (h *logHandlerImpl) SaveLog(w http.ResponseWriter, r *http.Request) {
	var req dutylog.SaveLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.logService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLog implements LogHandler
func (h *logHandlerImpl) GetLog(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}
	factory := r.URL.Query().Get("factory")
	if factory == "" {
		response.BadRequest(w, "factory is required", nil)
		return
	}
	shift := r.URL.Query().Get("shift_type")
	if !assignment.ValidShiftType(shift) {
		response.BadRequest(w, "shift_type must be 'day' or 'night'", nil)
		return
	}

	result, err := h.logService.Get(r.Context(), date, factory, assignment.ShiftType(shift))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMonth implements LogHandler
func (h *logHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	results, err := h.logService.ListMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// RequestApproval implements LogHandler
func (h *logHandlerImpl) RequestApproval(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	result, err := h.logService.RequestApproval(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApproveLog implements LogHandler
func (h *logHandlerImpl) ApproveLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	result, err := h.logService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RejectLog implements LogHandler
func (h *logHandlerImpl) RejectLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	var req dutylog.RejectLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.logService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
