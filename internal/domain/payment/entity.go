package payment

import (
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

// Payment is the aggregated duty-pay total for one employee in one month.
// It is a recomputed snapshot, not a ledger: every calculation run replaces
// the totals for its month.
type Payment struct {
	ID           string
	PaymentMonth string // YYYY-MM
	EmployeeID   string
	DutyCount    int
	Amount       decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Resolved identity for display.
	EmployeeNo   *string
	EmployeeName *string
	BusinessUnit *string
}

// Duty-pay rates in whole KRW.
var (
	RateHolidayDay   = decimal.NewFromInt(50000)
	RateHolidayNight = decimal.NewFromInt(60000)
	RateWeekdayNight = decimal.NewFromInt(40000)
)

// RateFor classifies one assignment occurrence into its pay rate. The
// weekday/day combination cannot occur in well-formed data; it falls back to
// the weekday night rate, which keeps the calculation total-preserving but
// masks misclassified rows rather than rejecting them.
func RateFor(category assignment.DayCategory, shift assignment.ShiftType) decimal.Decimal {
	switch {
	case category == assignment.DayCategoryHoliday && shift == assignment.ShiftDay:
		return RateHolidayDay
	case category == assignment.DayCategoryHoliday && shift == assignment.ShiftNight:
		return RateHolidayNight
	case category == assignment.DayCategoryWeekday && shift == assignment.ShiftNight:
		return RateWeekdayNight
	default:
		return RateWeekdayNight
	}
}
