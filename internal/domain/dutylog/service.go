package dutylog

import (
	"context"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
)

type LogService interface {
	// Save creates the log as a draft on first write, updates content on a
	// draft, and moves a rejected log back to draft. Saving an approved log
	// fails with ErrLogApproved.
	Save(ctx context.Context, req SaveLogRequest) (LogResponse, error)
	Get(ctx context.Context, date time.Time, factory string, shift assignment.ShiftType) (LogResponse, error)
	ListMonth(ctx context.Context, year, month int) ([]LogResponse, error)
	RequestApproval(ctx context.Context, id string) (LogResponse, error)
	Approve(ctx context.Context, id string) (LogResponse, error)
	Reject(ctx context.Context, id string, reason string) (LogResponse, error)
}
