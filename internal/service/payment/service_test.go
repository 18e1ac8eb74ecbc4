package payment

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAssignmentRepo struct {
	assignments []assignment.Assignment
}

func (r *fakeAssignmentRepo) Create(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	r.assignments = append(r.assignments, a)
	return a, nil
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id string) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) ListMonth(_ context.Context, year, month int) ([]assignment.Assignment, error) {
	start, end := assignment.MonthWindow(year, month)
	var out []assignment.Assignment
	for _, a := range r.assignments {
		if !a.DutyDate.Before(start) && a.DutyDate.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) GetByDateShift(_ context.Context, date time.Time, shift assignment.ShiftType) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) GetLastByCategory(_ context.Context, category assignment.DayCategory, statuses []assignment.Status) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) Update(_ context.Context, req assignment.UpdateAssignmentRequest) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id string) error { return nil }

type fakePaymentRepo struct {
	rows   map[string]payment.Payment // keyed month|employee
	units  map[string]string          // business unit per employee
	nextID int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		rows:  map[string]payment.Payment{},
		units: map[string]string{},
	}
}

func (r *fakePaymentRepo) key(month, employeeID string) string { return month + "|" + employeeID }

func (r *fakePaymentRepo) Upsert(_ context.Context, p payment.Payment) (payment.Payment, error) {
	k := r.key(p.PaymentMonth, p.EmployeeID)
	if existing, ok := r.rows[k]; ok {
		existing.DutyCount = p.DutyCount
		existing.Amount = p.Amount
		r.rows[k] = existing
		return existing, nil
	}
	r.nextID++
	p.ID = "p-" + p.EmployeeID
	p.Status = payment.StatusUnpaid
	r.rows[k] = p
	return p, nil
}

func (r *fakePaymentRepo) ListMonth(_ context.Context, month string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range r.rows {
		if p.PaymentMonth != month {
			continue
		}
		if unit, ok := r.units[p.EmployeeID]; ok {
			u := unit
			p.BusinessUnit = &u
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *fakePaymentRepo) DeleteMonthExcept(_ context.Context, month string, employeeIDs []string) error {
	keep := map[string]bool{}
	for _, id := range employeeIDs {
		keep[id] = true
	}
	for k, p := range r.rows {
		if p.PaymentMonth == month && !keep[p.EmployeeID] {
			delete(r.rows, k)
		}
	}
	return nil
}

func (r *fakePaymentRepo) MarkPaid(_ context.Context, ids []string) error {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	for k, p := range r.rows {
		if wanted[p.ID] && p.Status == payment.StatusUnpaid {
			p.Status = payment.StatusPaid
			r.rows[k] = p
		}
	}
	return nil
}

func marchAssignments() []assignment.Assignment {
	saturday := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	return []assignment.Assignment{
		{DutyDate: saturday, ShiftType: assignment.ShiftDay, DayCategory: assignment.DayCategoryHoliday, MainDutyID: "m1", SubDutyID: "s1", Status: assignment.StatusCompleted},
		{DutyDate: saturday, ShiftType: assignment.ShiftNight, DayCategory: assignment.DayCategoryHoliday, MainDutyID: "m1", SubDutyID: "s1", Status: assignment.StatusCompleted},
		{DutyDate: monday, ShiftType: assignment.ShiftNight, DayCategory: assignment.DayCategoryWeekday, MainDutyID: "m2", SubDutyID: "s2", Status: assignment.StatusConfirmed},
		// Provisional records never accrue pay.
		{DutyDate: monday.AddDate(0, 0, 1), ShiftType: assignment.ShiftNight, DayCategory: assignment.DayCategoryWeekday, MainDutyID: "m2", SubDutyID: "s2", Status: assignment.StatusScheduled},
		{DutyDate: monday.AddDate(0, 0, 2), ShiftType: assignment.ShiftNight, DayCategory: assignment.DayCategoryWeekday, MainDutyID: "m2", SubDutyID: "s2", Status: assignment.StatusChanged},
	}
}

func newTestService(assignments []assignment.Assignment) (payment.PaymentService, *fakePaymentRepo) {
	paymentRepo := newFakePaymentRepo()
	assignmentRepo := &fakeAssignmentRepo{assignments: assignments}
	return NewPaymentService(fakeTxManager{}, paymentRepo, assignmentRepo), paymentRepo
}

func amountFor(t *testing.T, results []payment.PaymentResponse, employeeID string) decimal.Decimal {
	t.Helper()
	for _, p := range results {
		if p.EmployeeID == employeeID {
			return p.Amount
		}
	}
	t.Fatalf("no payment row for %s", employeeID)
	return decimal.Zero
}

func TestCalculateMonth_Classification(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(marchAssignments())

	results, err := svc.CalculateMonth(context.Background(), 2025, 3)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Holiday day 50000 + holiday night 60000, for both occupants.
	assert.True(t, amountFor(t, results, "m1").Equal(decimal.NewFromInt(110000)))
	assert.True(t, amountFor(t, results, "s1").Equal(decimal.NewFromInt(110000)))
	// One weekday night each.
	assert.True(t, amountFor(t, results, "m2").Equal(decimal.NewFromInt(40000)))
	assert.True(t, amountFor(t, results, "s2").Equal(decimal.NewFromInt(40000)))

	for _, p := range results {
		assert.Equal(t, "2025-03", p.PaymentMonth)
		assert.Equal(t, string(payment.StatusUnpaid), p.Status)
	}
}

func TestCalculateMonth_Idempotent(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(marchAssignments())
	ctx := context.Background()

	first, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)
	second, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateMonth_PreservesPaidStatus(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(marchAssignments())
	ctx := context.Background()

	results, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)

	var paidID string
	for _, p := range results {
		if p.EmployeeID == "m1" {
			paidID = p.ID
		}
	}
	require.NoError(t, svc.MarkPaid(ctx, payment.MarkPaidRequest{PaymentIDs: []string{paidID}}))

	recalced, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)
	for _, p := range recalced {
		if p.EmployeeID == "m1" {
			assert.Equal(t, string(payment.StatusPaid), p.Status)
		} else {
			assert.Equal(t, string(payment.StatusUnpaid), p.Status)
		}
	}
}

func TestCalculateMonth_PrunesStaleRows(t *testing.T) {
	t.Parallel()
	assignments := marchAssignments()
	paymentRepo := newFakePaymentRepo()
	assignmentRepo := &fakeAssignmentRepo{assignments: assignments}
	svc := NewPaymentService(fakeTxManager{}, paymentRepo, assignmentRepo)
	ctx := context.Background()

	_, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)

	// The weekday pair drops out of the roster entirely.
	assignmentRepo.assignments = assignments[:2]

	results, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, p := range results {
		assert.Contains(t, []string{"m1", "s1"}, p.EmployeeID)
	}
}

func TestCalculateMonth_InvalidMonth(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(nil)

	_, err := svc.CalculateMonth(context.Background(), 2025, 13)
	assert.ErrorIs(t, err, payment.ErrInvalidMonth)
}

func TestSummarizeByBusinessUnit(t *testing.T) {
	t.Parallel()
	paymentRepo := newFakePaymentRepo()
	paymentRepo.units["m1"] = "엔진사업부"
	paymentRepo.units["s1"] = "엔진사업부"
	paymentRepo.units["m2"] = "변속기사업부"
	paymentRepo.units["s2"] = "변속기사업부"
	assignmentRepo := &fakeAssignmentRepo{assignments: marchAssignments()}
	svc := NewPaymentService(fakeTxManager{}, paymentRepo, assignmentRepo)
	ctx := context.Background()

	_, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)

	summaries, err := svc.SummarizeByBusinessUnit(ctx, 2025, 3)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	all := summaries[0]
	assert.Equal(t, payment.SummaryAllKey, all.BusinessUnit)
	assert.Equal(t, 4, all.EmployeeCount)
	assert.Equal(t, 6, all.DutyCount)
	assert.True(t, all.Amount.Equal(decimal.NewFromInt(300000)))

	byUnit := map[string]payment.BusinessUnitSummary{}
	for _, s := range summaries[1:] {
		byUnit[s.BusinessUnit] = s
	}
	assert.True(t, byUnit["엔진사업부"].Amount.Equal(decimal.NewFromInt(220000)))
	assert.True(t, byUnit["변속기사업부"].Amount.Equal(decimal.NewFromInt(80000)))
}

func TestMarkPaid_EmptyRequest(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(nil)

	assert.NoError(t, svc.MarkPaid(context.Background(), payment.MarkPaidRequest{}))
}

func TestExportMonth(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(marchAssignments())
	ctx := context.Background()

	_, err := svc.CalculateMonth(ctx, 2025, 3)
	require.NoError(t, err)

	workbook, err := svc.ExportMonth(ctx, 2025, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, workbook)
	// xlsx files are zip archives.
	assert.Equal(t, byte('P'), workbook[0])
	assert.Equal(t, byte('K'), workbook[1])
}

func TestRateFor(t *testing.T) {
	t.Parallel()

	assert.True(t, payment.RateFor(assignment.DayCategoryHoliday, assignment.ShiftDay).Equal(decimal.NewFromInt(50000)))
	assert.True(t, payment.RateFor(assignment.DayCategoryHoliday, assignment.ShiftNight).Equal(decimal.NewFromInt(60000)))
	assert.True(t, payment.RateFor(assignment.DayCategoryWeekday, assignment.ShiftNight).Equal(decimal.NewFromInt(40000)))
	// Malformed weekday/day rows fall back to the weekday night rate.
	assert.True(t, payment.RateFor(assignment.DayCategoryWeekday, assignment.ShiftDay).Equal(decimal.NewFromInt(40000)))
}
