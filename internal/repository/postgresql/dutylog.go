package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/dutylog"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type logRepository struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) dutylog.LogRepository {
	return &logRepository{db: db}
}

const logColumns = `id, log_date, factory, shift_type, workforce_status,
	construction_status, issues, special_notes, approval_status,
	approved_at, reject_reason, created_at, updated_at`

func scanLog(row pgx.Row) (dutylog.DutyLog, error) {
	var l dutylog.DutyLog
	var workforceBytes, constructionBytes []byte
	err := row.Scan(
		&l.ID, &l.LogDate, &l.Factory, &l.ShiftType, &workforceBytes,
		&constructionBytes, &l.Issues, &l.SpecialNotes, &l.ApprovalStatus,
		&l.ApprovedAt, &l.RejectReason, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return dutylog.DutyLog{}, err
	}
	_ = json.Unmarshal(workforceBytes, &l.WorkforceStatus)
	_ = json.Unmarshal(constructionBytes, &l.ConstructionStatus)
	return l, nil
}

func (r *logRepository) Create(ctx context.Context, l dutylog.DutyLog) (dutylog.DutyLog, error) {
	q := GetQuerier(ctx, r.db)

	workforceJSON, _ := json.Marshal(l.WorkforceStatus)
	constructionJSON, _ := json.Marshal(l.ConstructionStatus)

	query := `
		INSERT INTO duty_logs (
			log_date, factory, shift_type, workforce_status,
			construction_status, issues, special_notes, approval_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + logColumns

	created, err := scanLog(q.QueryRow(ctx, query,
		l.LogDate, l.Factory, l.ShiftType, workforceJSON,
		constructionJSON, l.Issues, l.SpecialNotes, l.ApprovalStatus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_log_key") {
			return dutylog.DutyLog{}, fmt.Errorf("duty log already exists for this date, factory and shift")
		}
		return dutylog.DutyLog{}, fmt.Errorf("failed to create duty log: %w", err)
	}

	return created, nil
}

func (r *logRepository) GetByID(ctx context.Context, id string) (dutylog.DutyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + logColumns + ` FROM duty_logs WHERE id = $1`

	l, err := scanLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dutylog.DutyLog{}, dutylog.ErrLogNotFound
		}
		return dutylog.DutyLog{}, fmt.Errorf("failed to get duty log: %w", err)
	}

	return l, nil
}

func (r *logRepository) GetByKey(ctx context.Context, date time.Time, factory string, shift assignment.ShiftType) (dutylog.DutyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM duty_logs
		WHERE log_date = $1 AND factory = $2 AND shift_type = $3
	`

	l, err := scanLog(q.QueryRow(ctx, query, date, factory, shift))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dutylog.DutyLog{}, dutylog.ErrLogNotFound
		}
		return dutylog.DutyLog{}, fmt.Errorf("failed to get duty log: %w", err)
	}

	return l, nil
}

func (r *logRepository) ListMonth(ctx context.Context, year, month int) ([]dutylog.DutyLog, error) {
	q := GetQuerier(ctx, r.db)

	start, end := assignment.MonthWindow(year, month)

	query := `
		SELECT ` + logColumns + `
		FROM duty_logs
		WHERE log_date >= $1 AND log_date < $2
		ORDER BY log_date, factory, shift_type
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty logs: %w", err)
	}
	defer rows.Close()

	var logs []dutylog.DutyLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, nil
}

func (r *logRepository) UpdateContent(ctx context.Context, l dutylog.DutyLog) (dutylog.DutyLog, error) {
	q := GetQuerier(ctx, r.db)

	workforceJSON, _ := json.Marshal(l.WorkforceStatus)
	constructionJSON, _ := json.Marshal(l.ConstructionStatus)

	query := `
		UPDATE duty_logs
		SET workforce_status = $2,
			construction_status = $3,
			issues = $4,
			special_notes = $5,
			approval_status = $6,
			reject_reason = NULL,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + logColumns

	updated, err := scanLog(q.QueryRow(ctx, query,
		l.ID, workforceJSON, constructionJSON, l.Issues, l.SpecialNotes, l.ApprovalStatus,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dutylog.DutyLog{}, dutylog.ErrLogNotFound
		}
		return dutylog.DutyLog{}, fmt.Errorf("failed to update duty log: %w", err)
	}

	return updated, nil
}

func (r *logRepository) UpdateApproval(ctx context.Context, id string, status dutylog.ApprovalStatus, approvedAt *time.Time, rejectReason *string) (dutylog.DutyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE duty_logs
		SET approval_status = $2, approved_at = $3, reject_reason = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + logColumns

	updated, err := scanLog(q.QueryRow(ctx, query, id, status, approvedAt, rejectReason))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dutylog.DutyLog{}, dutylog.ErrLogNotFound
		}
		return dutylog.DutyLog{}, fmt.Errorf("failed to update duty log approval: %w", err)
	}

	return updated, nil
}
