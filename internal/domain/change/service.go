package change

import "context"

type ChangeService interface {
	// RecordChange registers the substitution and, inside the same
	// transaction, moves the assignment to status "changed" with the new
	// occupant in place.
	RecordChange(ctx context.Context, req RecordChangeRequest) (ChangeResponse, error)
	ListByAssignment(ctx context.Context, assignmentID string) ([]ChangeResponse, error)
	ListMonth(ctx context.Context, year, month int) ([]ChangeResponse, error)
}
