package dutylog

import "errors"

var (
	ErrLogNotFound       = errors.New("duty log not found")
	ErrLogApproved       = errors.New("approved logs are immutable")
	ErrNotDraft          = errors.New("only a draft log can be submitted for approval")
	ErrNotRequested      = errors.New("log is not awaiting approval")
	ErrRejectNeedsReason = errors.New("a rejection reason is required")
)
