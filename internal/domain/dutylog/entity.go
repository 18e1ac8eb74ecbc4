package dutylog

import (
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
)

type ApprovalStatus string

const (
	StatusDraft     ApprovalStatus = "draft"
	StatusRequested ApprovalStatus = "requested"
	StatusApproved  ApprovalStatus = "approved"
	StatusRejected  ApprovalStatus = "rejected"
)

// DutyLog is the per-date, per-factory, per-shift work log. Its approval
// workflow is draft → requested → approved|rejected; approved is terminal,
// a rejected log re-enters draft on the next save.
type DutyLog struct {
	ID                 string
	LogDate            time.Time
	Factory            string
	ShiftType          assignment.ShiftType
	WorkforceStatus    map[string]DepartmentWorkforce
	ConstructionStatus map[string]ConstructionBlock
	Issues             string
	SpecialNotes       string
	ApprovalStatus     ApprovalStatus
	ApprovedAt         *time.Time
	RejectReason       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DepartmentWorkforce is the overtime/night headcount block per department.
type DepartmentWorkforce struct {
	OvertimeCount int `json:"overtime_count"`
	NightCount    int `json:"night_count"`
}

// ConstructionBlock records contractor activity for one shift window.
type ConstructionBlock struct {
	CompanyCount int  `json:"company_count"`
	Headcount    int  `json:"headcount"`
	HotWork      bool `json:"hot_work"`
}

// CanSave reports whether the log content may still be edited. Approved logs
// are immutable.
func (l *DutyLog) CanSave() bool {
	return l.ApprovalStatus != StatusApproved
}
