package payment

import (
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID           string          `json:"id"`
	PaymentMonth string          `json:"payment_month"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeNo   string          `json:"employee_no,omitempty"`
	EmployeeName string          `json:"employee_name,omitempty"`
	BusinessUnit string          `json:"business_unit,omitempty"`
	DutyCount    int             `json:"duty_count"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

func ToResponse(p Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:           p.ID,
		PaymentMonth: p.PaymentMonth,
		EmployeeID:   p.EmployeeID,
		DutyCount:    p.DutyCount,
		Amount:       p.Amount,
		Status:       string(p.Status),
	}
	if p.EmployeeNo != nil {
		resp.EmployeeNo = *p.EmployeeNo
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.BusinessUnit != nil {
		resp.BusinessUnit = *p.BusinessUnit
	}
	return resp
}

// BusinessUnitSummary aggregates committed payment records for one business
// unit. The "ALL" bucket carries the grand totals.
type BusinessUnitSummary struct {
	BusinessUnit  string          `json:"business_unit"`
	EmployeeCount int             `json:"employee_count"`
	DutyCount     int             `json:"duty_count"`
	Amount        decimal.Decimal `json:"amount"`
}

// SummaryAllKey is the synthetic grand-total bucket.
const SummaryAllKey = "ALL"

type MarkPaidRequest struct {
	PaymentIDs []string `json:"payment_ids"`
}
