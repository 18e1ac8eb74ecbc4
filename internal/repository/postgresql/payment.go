package postgresql

import (
	"context"
	"fmt"

	"github.com/das-hq/duty-backend-go/internal/domain/payment"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Upsert(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	// Totals are replaced on every run; an already-paid row keeps its
	// status so recalculation cannot un-pay anyone.
	query := `
		INSERT INTO duty_payments (payment_month, employee_id, duty_count, amount, status)
		VALUES ($1, $2, $3, $4, 'unpaid')
		ON CONFLICT (payment_month, employee_id) DO UPDATE SET
			duty_count = EXCLUDED.duty_count,
			amount = EXCLUDED.amount,
			updated_at = NOW()
		RETURNING id, payment_month, employee_id, duty_count, amount, status,
			created_at, updated_at
	`

	var saved payment.Payment
	err := q.QueryRow(ctx, query,
		p.PaymentMonth, p.EmployeeID, p.DutyCount, p.Amount,
	).Scan(
		&saved.ID, &saved.PaymentMonth, &saved.EmployeeID, &saved.DutyCount,
		&saved.Amount, &saved.Status, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to upsert duty payment: %w", err)
	}

	return saved, nil
}

func (r *paymentRepository) ListMonth(ctx context.Context, month string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.payment_month, p.employee_id, p.duty_count, p.amount,
			p.status, p.created_at, p.updated_at,
			e.employee_no, e.name, e.business_unit
		FROM duty_payments p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.payment_month = $1
		ORDER BY e.employee_no
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(
			&p.ID, &p.PaymentMonth, &p.EmployeeID, &p.DutyCount, &p.Amount,
			&p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeNo, &p.EmployeeName, &p.BusinessUnit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan duty payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

func (r *paymentRepository) DeleteMonthExcept(ctx context.Context, month string, employeeIDs []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM duty_payments
		WHERE payment_month = $1 AND NOT (employee_id = ANY($2))
	`

	if _, err := q.Exec(ctx, query, month, employeeIDs); err != nil {
		return fmt.Errorf("failed to prune stale duty payments: %w", err)
	}

	return nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE duty_payments
		SET status = 'paid', updated_at = NOW()
		WHERE id = ANY($1) AND status = 'unpaid'
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to mark duty payments paid: %w", err)
	}

	return nil
}
