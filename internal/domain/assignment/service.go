package assignment

import "context"

type AssignmentService interface {
	// NextAssignee runs the last-assignee rotation for one role on one day
	// category. An empty eligible pool is not an error: the response carries
	// a nil employee and the caller treats the slot as unfillable.
	NextAssignee(ctx context.Context, role DutyRole, category DayCategory) (NextAssigneeResponse, error)

	ListMonth(ctx context.Context, year, month int) ([]AssignmentResponse, error)
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error

	// GenerateMonth bulk-creates the month's roster: one night record per
	// weekday, a day and a night record per holiday date. Slots that are
	// already occupied or cannot be filled are skipped, never overwritten.
	GenerateMonth(ctx context.Context, year, month int) ([]GenerateMonthResult, error)
}
