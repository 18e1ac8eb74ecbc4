package assignment

import "time"

// DayCategory classifies a duty date; it drives both the shift structure and
// the pay rate.
type DayCategory string

const (
	DayCategoryHoliday DayCategory = "holiday"
	DayCategoryWeekday DayCategory = "weekday"
)

// ShiftType is the duty occurrence within a date. Weekday dates only ever
// carry a night shift; holiday dates carry a day and a night shift as two
// separate records.
type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
)

// DutyRole is one of the two concurrently filled on-call roles per slot.
type DutyRole string

const (
	RoleMain DutyRole = "main"
	RoleSub  DutyRole = "sub"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusChanged   Status = "changed"
	StatusCompleted Status = "completed"
)

var StatusValues = []string{
	string(StatusScheduled),
	string(StatusConfirmed),
	string(StatusChanged),
	string(StatusCompleted),
}

type Assignment struct {
	ID          string
	DutyDate    time.Time
	DayOfWeek   string
	ShiftType   ShiftType
	DayCategory DayCategory
	MainDutyID  string
	SubDutyID   string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Resolved identity for display, populated by month listings.
	MainDutyNo   *string
	MainDutyName *string
	SubDutyNo    *string
	SubDutyName  *string
}

// CategoryForDate classifies a date: Saturday and Sunday count as holiday,
// everything else as weekday.
func CategoryForDate(date time.Time) DayCategory {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayCategoryHoliday
	default:
		return DayCategoryWeekday
	}
}

var koreanDayNames = map[time.Weekday]string{
	time.Monday:    "월",
	time.Tuesday:   "화",
	time.Wednesday: "수",
	time.Thursday:  "목",
	time.Friday:    "금",
	time.Saturday:  "토",
	time.Sunday:    "일",
}

// DayOfWeekLabel returns the single-character Korean weekday label used on
// the roster sheets.
func DayOfWeekLabel(date time.Time) string {
	return koreanDayNames[date.Weekday()]
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusChanged, StatusCompleted:
		return true
	}
	return false
}

func ValidShiftType(s string) bool {
	return ShiftType(s) == ShiftDay || ShiftType(s) == ShiftNight
}

func ValidRole(s string) bool {
	return DutyRole(s) == RoleMain || DutyRole(s) == RoleSub
}

func ValidDayCategory(s string) bool {
	return DayCategory(s) == DayCategoryHoliday || DayCategory(s) == DayCategoryWeekday
}
