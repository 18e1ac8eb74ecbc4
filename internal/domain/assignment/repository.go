package assignment

import (
	"context"
	"time"
)

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	// ListMonth returns every assignment whose duty date falls inside the
	// calendar month, ordered by date ascending, with main/sub identity
	// resolved.
	ListMonth(ctx context.Context, year, month int) ([]Assignment, error)
	// GetByDateShift reports the assignment occupying a (date, shift) slot.
	GetByDateShift(ctx context.Context, date time.Time, shift ShiftType) (Assignment, error)
	// GetLastByCategory returns the most recent assignment of the given day
	// category whose status is in statuses, ordered by duty date descending
	// with the night shift outranking the day shift on a shared date.
	GetLastByCategory(ctx context.Context, category DayCategory, statuses []Status) (Assignment, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) (Assignment, error)
	Delete(ctx context.Context, id string) error
}
