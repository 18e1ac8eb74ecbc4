package dutylog

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/dutylog"
	"github.com/das-hq/duty-backend-go/internal/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	logs   map[string]dutylog.DutyLog
	nextID int
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{logs: map[string]dutylog.DutyLog{}}
}

func (r *fakeLogRepo) Create(_ context.Context, l dutylog.DutyLog) (dutylog.DutyLog, error) {
	r.nextID++
	l.ID = fmt.Sprintf("l-%d", r.nextID)
	r.logs[l.ID] = l
	return l, nil
}

func (r *fakeLogRepo) GetByID(_ context.Context, id string) (dutylog.DutyLog, error) {
	l, ok := r.logs[id]
	if !ok {
		return dutylog.DutyLog{}, dutylog.ErrLogNotFound
	}
	return l, nil
}

func (r *fakeLogRepo) GetByKey(_ context.Context, date time.Time, factory string, shift assignment.ShiftType) (dutylog.DutyLog, error) {
	for _, l := range r.logs {
		if l.LogDate.Equal(date) && l.Factory == factory && l.ShiftType == shift {
			return l, nil
		}
	}
	return dutylog.DutyLog{}, dutylog.ErrLogNotFound
}

func (r *fakeLogRepo) ListMonth(_ context.Context, year, month int) ([]dutylog.DutyLog, error) {
	start, end := assignment.MonthWindow(year, month)
	var out []dutylog.DutyLog
	for _, l := range r.logs {
		if !l.LogDate.Before(start) && l.LogDate.Before(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLogRepo) UpdateContent(_ context.Context, l dutylog.DutyLog) (dutylog.DutyLog, error) {
	if _, ok := r.logs[l.ID]; !ok {
		return dutylog.DutyLog{}, dutylog.ErrLogNotFound
	}
	l.RejectReason = nil
	r.logs[l.ID] = l
	return l, nil
}

func (r *fakeLogRepo) UpdateApproval(_ context.Context, id string, status dutylog.ApprovalStatus, approvedAt *time.Time, rejectReason *string) (dutylog.DutyLog, error) {
	l, ok := r.logs[id]
	if !ok {
		return dutylog.DutyLog{}, dutylog.ErrLogNotFound
	}
	l.ApprovalStatus = status
	l.ApprovedAt = approvedAt
	l.RejectReason = rejectReason
	r.logs[id] = l
	return l, nil
}

type fakeNotifier struct {
	sent []notify.Message
}

func (n *fakeNotifier) Send(_ context.Context, msg notify.Message) error {
	n.sent = append(n.sent, msg)
	return nil
}

func newTestService() (dutylog.LogService, *fakeLogRepo, *fakeNotifier) {
	repo := newFakeLogRepo()
	notifier := &fakeNotifier{}
	svc := NewLogService(repo, notifier, slog.New(slog.DiscardHandler))
	return svc, repo, notifier
}

func saveRequest() dutylog.SaveLogRequest {
	return dutylog.SaveLogRequest{
		LogDate:   "2025-03-01",
		Factory:   "창원1공장",
		ShiftType: "night",
		WorkforceStatus: map[string]dutylog.DepartmentWorkforce{
			"생산1팀": {OvertimeCount: 4, NightCount: 2},
		},
		ConstructionStatus: map[string]dutylog.ConstructionBlock{
			"주간": {CompanyCount: 1, Headcount: 8, HotWork: true},
		},
		Issues: "특이사항 없음",
	}
}

func TestSave_CreatesDraft(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	resp, err := svc.Save(context.Background(), saveRequest())
	require.NoError(t, err)
	assert.Equal(t, string(dutylog.StatusDraft), resp.ApprovalStatus)
	assert.Equal(t, "특이사항 없음", resp.Issues)
}

func TestSave_UpdatesExistingDraft(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)

	req := saveRequest()
	req.Issues = "야간 정전 발생"
	second, err := svc.Save(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "야간 정전 발생", second.Issues)
	assert.Len(t, repo.logs, 1)
}

func TestApprovalFlow(t *testing.T) {
	t.Parallel()
	svc, _, notifier := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)

	requested, err := svc.RequestApproval(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(dutylog.StatusRequested), requested.ApprovalStatus)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(dutylog.StatusApproved), approved.ApprovalStatus)
	require.NotNil(t, approved.ApprovedAt)
	assert.Len(t, notifier.sent, 1)
}

func TestApprove_RequiresRequested(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, dutylog.ErrNotRequested)
}

func TestRequestApproval_RequiresDraft(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.RequestApproval(ctx, created.ID)
	assert.ErrorIs(t, err, dutylog.ErrNotDraft)
}

func TestReject_RequiresReason(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Reject(ctx, created.ID, "   ")
	assert.ErrorIs(t, err, dutylog.ErrRejectNeedsReason)
}

func TestReject_ThenSaveReentersDraft(t *testing.T) {
	t.Parallel()
	svc, _, notifier := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, created.ID)
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, created.ID, "인원 현황 누락")
	require.NoError(t, err)
	assert.Equal(t, string(dutylog.StatusRejected), rejected.ApprovalStatus)
	require.NotNil(t, rejected.RejectReason)
	assert.Equal(t, "인원 현황 누락", *rejected.RejectReason)
	assert.Len(t, notifier.sent, 1)

	resaved, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)
	assert.Equal(t, string(dutylog.StatusDraft), resaved.ApprovalStatus)
	assert.Nil(t, resaved.RejectReason)
}

func TestSave_ApprovedIsImmutable(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)
	_, err = svc.RequestApproval(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Save(ctx, saveRequest())
	assert.ErrorIs(t, err, dutylog.ErrLogApproved)
}

func TestReject_RequiresRequested(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Save(ctx, saveRequest())
	require.NoError(t, err)

	_, err = svc.Reject(ctx, created.ID, "사유")
	assert.ErrorIs(t, err, dutylog.ErrNotRequested)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService()

	_, err := svc.Get(context.Background(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "창원1공장", assignment.ShiftNight)
	assert.ErrorIs(t, err, dutylog.ErrLogNotFound)
}
