package payment

import "context"

type PaymentRepository interface {
	// Upsert writes the recomputed totals keyed by (month, employee). An
	// existing row keeps its paid status; only count and amount are
	// replaced, which is what makes CalculateMonth idempotent.
	Upsert(ctx context.Context, p Payment) (Payment, error)
	ListMonth(ctx context.Context, month string) ([]Payment, error)
	// DeleteMonthExcept removes stale rows for employees no longer present
	// in the month's recomputed set.
	DeleteMonthExcept(ctx context.Context, month string, employeeIDs []string) error
	MarkPaid(ctx context.Context, ids []string) error
}
