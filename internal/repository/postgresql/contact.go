package postgresql

import (
	"context"
	"fmt"

	"github.com/das-hq/duty-backend-go/internal/domain/contact"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contactRepository struct {
	db *database.DB
}

func NewContactRepository(db *database.DB) contact.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Upsert(ctx context.Context, c contact.EmergencyContact) (contact.EmergencyContact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO emergency_contacts (employee_id, phone_home, phone_mobile, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE SET
			phone_home = EXCLUDED.phone_home,
			phone_mobile = EXCLUDED.phone_mobile,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, employee_id, phone_home, phone_mobile, note, created_at, updated_at
	`

	var saved contact.EmergencyContact
	err := q.QueryRow(ctx, query, c.EmployeeID, c.PhoneHome, c.PhoneMobile, c.Note).Scan(
		&saved.ID, &saved.EmployeeID, &saved.PhoneHome, &saved.PhoneMobile,
		&saved.Note, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return contact.EmergencyContact{}, fmt.Errorf("failed to upsert emergency contact: %w", err)
	}

	return saved, nil
}

func (r *contactRepository) GetByEmployeeID(ctx context.Context, employeeID string) (contact.EmergencyContact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.phone_home, c.phone_mobile, c.note,
			c.created_at, c.updated_at,
			e.employee_no, e.name, e.department, e.factory
		FROM emergency_contacts c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.employee_id = $1
	`

	var c contact.EmergencyContact
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&c.ID, &c.EmployeeID, &c.PhoneHome, &c.PhoneMobile, &c.Note,
		&c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeNo, &c.EmployeeName, &c.Department, &c.Factory,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contact.EmergencyContact{}, contact.ErrContactNotFound
		}
		return contact.EmergencyContact{}, fmt.Errorf("failed to get emergency contact: %w", err)
	}

	return c, nil
}

func (r *contactRepository) List(ctx context.Context, filter contact.ContactFilter) ([]contact.EmergencyContact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.phone_home, c.phone_mobile, c.note,
			c.created_at, c.updated_at,
			e.employee_no, e.name, e.department, e.factory
		FROM emergency_contacts c
		JOIN employees e ON c.employee_id = e.id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.Factory != nil {
		query += fmt.Sprintf(" AND e.factory = $%d", argIdx)
		args = append(args, *filter.Factory)
		argIdx++
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	query += " ORDER BY e.employee_no"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	defer rows.Close()

	var contacts []contact.EmergencyContact
	for rows.Next() {
		var c contact.EmergencyContact
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.PhoneHome, &c.PhoneMobile, &c.Note,
			&c.CreatedAt, &c.UpdatedAt,
			&c.EmployeeNo, &c.EmployeeName, &c.Department, &c.Factory,
		); err != nil {
			return nil, fmt.Errorf("failed to scan emergency contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, nil
}
