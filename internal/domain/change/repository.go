package change

import "context"

type ChangeRepository interface {
	// Create inserts the audit row. Changes are append-only; there is no
	// update or delete.
	Create(ctx context.Context, c Change) (Change, error)
	ListByAssignment(ctx context.Context, assignmentID string) ([]Change, error)
	ListMonth(ctx context.Context, year, month int) ([]Change, error)
}
