package payment

import (
	"context"
	"fmt"
	"sort"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/payment"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type PaymentServiceImpl struct {
	txm            database.TxManager
	paymentRepo    payment.PaymentRepository
	assignmentRepo assignment.AssignmentRepository
}

func NewPaymentService(
	txm database.TxManager,
	paymentRepo payment.PaymentRepository,
	assignmentRepo assignment.AssignmentRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		txm:            txm,
		paymentRepo:    paymentRepo,
		assignmentRepo: assignmentRepo,
	}
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// countsAsPayable reports whether an assignment accrues duty pay. Scheduled
// and changed records are still provisional.
func countsAsPayable(status assignment.Status) bool {
	return status == assignment.StatusConfirmed || status == assignment.StatusCompleted
}

type accrual struct {
	dutyCount int
	amount    decimal.Decimal
}

func (s *PaymentServiceImpl) CalculateMonth(ctx context.Context, year, month int) ([]payment.PaymentResponse, error) {
	if month < 1 || month > 12 {
		return nil, payment.ErrInvalidMonth
	}

	records, err := s.assignmentRepo.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	totals := map[string]*accrual{}
	accrue := func(employeeID string, rate decimal.Decimal) {
		t, ok := totals[employeeID]
		if !ok {
			t = &accrual{amount: decimal.Zero}
			totals[employeeID] = t
		}
		t.dutyCount++
		t.amount = t.amount.Add(rate)
	}

	for _, a := range records {
		if !countsAsPayable(a.Status) {
			continue
		}
		rate := payment.RateFor(a.DayCategory, a.ShiftType)
		accrue(a.MainDutyID, rate)
		accrue(a.SubDutyID, rate)
	}

	pm := monthKey(year, month)
	employeeIDs := make([]string, 0, len(totals))
	for id := range totals {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	err = s.txm.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, id := range employeeIDs {
			t := totals[id]
			if _, err := s.paymentRepo.Upsert(txCtx, payment.Payment{
				PaymentMonth: pm,
				EmployeeID:   id,
				DutyCount:    t.dutyCount,
				Amount:       t.amount,
			}); err != nil {
				return err
			}
		}
		return s.paymentRepo.DeleteMonthExcept(txCtx, pm, employeeIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.ListMonth(ctx, year, month)
}

func (s *PaymentServiceImpl) ListMonth(ctx context.Context, year, month int) ([]payment.PaymentResponse, error) {
	if month < 1 || month > 12 {
		return nil, payment.ErrInvalidMonth
	}

	payments, err := s.paymentRepo.ListMonth(ctx, monthKey(year, month))
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.ToResponse(p))
	}
	return responses, nil
}

func (s *PaymentServiceImpl) SummarizeByBusinessUnit(ctx context.Context, year, month int) ([]payment.BusinessUnitSummary, error) {
	payments, err := s.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*payment.BusinessUnitSummary{}
	order := []string{}
	add := func(unit string, p payment.PaymentResponse) {
		b, ok := buckets[unit]
		if !ok {
			b = &payment.BusinessUnitSummary{BusinessUnit: unit, Amount: decimal.Zero}
			buckets[unit] = b
			order = append(order, unit)
		}
		b.EmployeeCount++
		b.DutyCount += p.DutyCount
		b.Amount = b.Amount.Add(p.Amount)
	}

	for _, p := range payments {
		unit := p.BusinessUnit
		if unit == "" {
			unit = "미지정"
		}
		add(unit, p)
		add(payment.SummaryAllKey, p)
	}

	sort.Strings(order)
	summaries := make([]payment.BusinessUnitSummary, 0, len(order))
	// Grand total first, then units alphabetically.
	if all, ok := buckets[payment.SummaryAllKey]; ok {
		summaries = append(summaries, *all)
	}
	for _, unit := range order {
		if unit == payment.SummaryAllKey {
			continue
		}
		summaries = append(summaries, *buckets[unit])
	}
	return summaries, nil
}

func (s *PaymentServiceImpl) MarkPaid(ctx context.Context, req payment.MarkPaidRequest) error {
	if len(req.PaymentIDs) == 0 {
		return nil
	}
	return s.paymentRepo.MarkPaid(ctx, req.PaymentIDs)
}

var exportHeaders = []string{"사번", "성명", "사업부", "당직 횟수", "당직비", "지급 상태"}

func (s *PaymentServiceImpl) ExportMonth(ctx context.Context, year, month int) ([]byte, error) {
	payments, err := s.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%s 당직비", monthKey(year, month))
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	statusLabels := map[string]string{
		string(payment.StatusUnpaid): "미지급",
		string(payment.StatusPaid):   "지급 완료",
	}

	total := decimal.Zero
	for i, p := range payments {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.EmployeeNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.EmployeeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.BusinessUnit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.DutyCount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Amount.IntPart())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), statusLabels[p.Status])
		total = total.Add(p.Amount)
	}

	totalRow := len(payments) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "합계")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), total.IntPart())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render payment workbook: %w", err)
	}
	return buf.Bytes(), nil
}
