package employee

import "time"

type Employee struct {
	ID           string
	EmployeeNo   string // unique, stable, e.g. "E1001"
	Name         string
	Department   string
	Position     string
	Grade        int // 1..4, 1 is the most senior
	Factory      string
	BusinessUnit string
	PhoneHome    string
	PhoneMobile  string
	BankAccount  string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	GradeMin = 1
	GradeMax = 4
)
