package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/das-hq/duty-backend-go/internal/domain/payment"
	"github.com/das-hq/duty-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	CalculateMonth(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	SummarizeByBusinessUnit(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	ExportMonth(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

// CalculateMonth implements PaymentHandler
func (h *paymentHandlerImpl) CalculateMonth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	results, err := h.paymentService.CalculateMonth(r.Context(), req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListMonth implements PaymentHandler
func (h *paymentHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	results, err := h.paymentService.ListMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// SummarizeByBusinessUnit implements PaymentHandler
func (h *paymentHandlerImpl) SummarizeByBusinessUnit(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	results, err := h.paymentService.SummarizeByBusinessUnit(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MarkPaid implements PaymentHandler
func (h *paymentHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payment.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.paymentService.MarkPaid(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payments marked paid", nil)
}

// ExportMonth implements PaymentHandler
func (h *paymentHandlerImpl) ExportMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	workbook, err := h.paymentService.ExportMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("duty-payments-%04d-%02d.xlsx", year, month)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
