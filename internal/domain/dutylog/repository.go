package dutylog

import (
	"context"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
)

type LogRepository interface {
	Create(ctx context.Context, l DutyLog) (DutyLog, error)
	GetByID(ctx context.Context, id string) (DutyLog, error)
	GetByKey(ctx context.Context, date time.Time, factory string, shift assignment.ShiftType) (DutyLog, error)
	ListMonth(ctx context.Context, year, month int) ([]DutyLog, error)
	// UpdateContent replaces the editable fields and approval status; the
	// service decides which transitions are legal before calling it.
	UpdateContent(ctx context.Context, l DutyLog) (DutyLog, error)
	UpdateApproval(ctx context.Context, id string, status ApprovalStatus, approvedAt *time.Time, rejectReason *string) (DutyLog, error)
}
