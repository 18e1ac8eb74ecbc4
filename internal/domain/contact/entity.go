package contact

import "time"

// EmergencyContact holds the out-of-hours phone numbers for one employee.
// One row per employee, maintained by upsert.
type EmergencyContact struct {
	ID          string
	EmployeeID  string
	PhoneHome   string
	PhoneMobile string
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Resolved identity for the contact sheet.
	EmployeeNo   *string
	EmployeeName *string
	Department   *string
	Factory      *string
}
