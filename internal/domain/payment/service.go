package payment

import "context"

type PaymentService interface {
	// CalculateMonth walks the month's confirmed and completed assignments,
	// classifies each occurrence into a rate, and upserts one payment row
	// per employee. Rerunning without underlying changes yields identical
	// records; a retry after a partial failure is safe.
	CalculateMonth(ctx context.Context, year, month int) ([]PaymentResponse, error)
	ListMonth(ctx context.Context, year, month int) ([]PaymentResponse, error)
	SummarizeByBusinessUnit(ctx context.Context, year, month int) ([]BusinessUnitSummary, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) error
	// ExportMonth renders the month's payment sheet as an xlsx workbook.
	ExportMonth(ctx context.Context, year, month int) ([]byte, error)
}
