package dutylog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/dutylog"
	"github.com/das-hq/duty-backend-go/internal/pkg/notify"
)

type LogServiceImpl struct {
	logRepo  dutylog.LogRepository
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewLogService(
	logRepo dutylog.LogRepository,
	notifier notify.Notifier,
	logger *slog.Logger,
) dutylog.LogService {
	return &LogServiceImpl{
		logRepo:  logRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *LogServiceImpl) Save(ctx context.Context, req dutylog.SaveLogRequest) (dutylog.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return dutylog.LogResponse{}, err
	}

	logDate, _ := time.Parse("2006-01-02", req.LogDate)
	shift := assignment.ShiftType(req.ShiftType)

	existing, err := s.logRepo.GetByKey(ctx, logDate, req.Factory, shift)
	switch {
	case errors.Is(err, dutylog.ErrLogNotFound):
		created, err := s.logRepo.Create(ctx, dutylog.DutyLog{
			LogDate:            logDate,
			Factory:            req.Factory,
			ShiftType:          shift,
			WorkforceStatus:    req.WorkforceStatus,
			ConstructionStatus: req.ConstructionStatus,
			Issues:             req.Issues,
			SpecialNotes:       req.SpecialNotes,
			ApprovalStatus:     dutylog.StatusDraft,
		})
		if err != nil {
			return dutylog.LogResponse{}, err
		}
		return dutylog.ToResponse(created), nil
	case err != nil:
		return dutylog.LogResponse{}, err
	}

	if !existing.CanSave() {
		return dutylog.LogResponse{}, dutylog.ErrLogApproved
	}

	// Saving over a rejected log re-enters draft and discards the old
	// rejection reason.
	existing.WorkforceStatus = req.WorkforceStatus
	existing.ConstructionStatus = req.ConstructionStatus
	existing.Issues = req.Issues
	existing.SpecialNotes = req.SpecialNotes
	existing.ApprovalStatus = dutylog.StatusDraft

	updated, err := s.logRepo.UpdateContent(ctx, existing)
	if err != nil {
		return dutylog.LogResponse{}, err
	}
	return dutylog.ToResponse(updated), nil
}

func (s *LogServiceImpl) Get(ctx context.Context, date time.Time, factory string, shift assignment.ShiftType) (dutylog.LogResponse, error) {
	l, err := s.logRepo.GetByKey(ctx, date, factory, shift)
	if err != nil {
		return dutylog.LogResponse{}, err
	}
	return dutylog.ToResponse(l), nil
}

func (s *LogServiceImpl) ListMonth(ctx context.Context, year, month int) ([]dutylog.LogResponse, error) {
	logs, err := s.logRepo.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]dutylog.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, dutylog.ToResponse(l))
	}
	return responses, nil
}

func (s *LogServiceImpl) RequestApproval(ctx context.Context, id string) (dutylog.LogResponse, error) {
	l, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return dutylog.LogResponse{}, err
	}
	if l.ApprovalStatus != dutylog.StatusDraft {
		return dutylog.LogResponse{}, dutylog.ErrNotDraft
	}

	updated, err := s.logRepo.UpdateApproval(ctx, id, dutylog.StatusRequested, nil, nil)
	if err != nil {
		return dutylog.LogResponse{}, err
	}
	return dutylog.ToResponse(updated), nil
}

func (s *LogServiceImpl) Approve(ctx context.Context, id string) (dutylog.LogResponse, error) {
	l, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return dutylog.LogResponse{}, err
	}
	if l.ApprovalStatus != dutylog.StatusRequested {
		return dutylog.LogResponse{}, dutylog.ErrNotRequested
	}

	now := time.Now()
	updated, err := s.logRepo.UpdateApproval(ctx, id, dutylog.StatusApproved, &now, nil)
	if err != nil {
		return dutylog.LogResponse{}, err
	}

	s.notifyDecision(ctx, updated, "승인")
	return dutylog.ToResponse(updated), nil
}

func (s *LogServiceImpl) Reject(ctx context.Context, id string, reason string) (dutylog.LogResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return dutylog.LogResponse{}, dutylog.ErrRejectNeedsReason
	}

	l, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return dutylog.LogResponse{}, err
	}
	if l.ApprovalStatus != dutylog.StatusRequested {
		return dutylog.LogResponse{}, dutylog.ErrNotRequested
	}

	updated, err := s.logRepo.UpdateApproval(ctx, id, dutylog.StatusRejected, nil, &reason)
	if err != nil {
		return dutylog.LogResponse{}, err
	}

	s.notifyDecision(ctx, updated, "반려")
	return dutylog.ToResponse(updated), nil
}

func (s *LogServiceImpl) notifyDecision(ctx context.Context, l dutylog.DutyLog, decision string) {
	msg := notify.Message{
		Subject: fmt.Sprintf("당직일지 %s", decision),
		Body: fmt.Sprintf("%s %s %s 당직일지가 %s되었습니다.",
			l.LogDate.Format("2006-01-02"), l.Factory, l.ShiftType, decision),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("failed to send log decision notification",
			slog.String("log_id", l.ID),
			slog.Any("error", err),
		)
	}
}
