package assignment

import "fmt"

// RuleKey addresses the eligibility table directly by (day category, role),
// replacing the string-concatenated lookup keys of earlier iterations of the
// roster sheets.
type RuleKey struct {
	DayCategory DayCategory
	Role        DutyRole
}

// EligibilityRule restricts which employees may fill a role on a day
// category: the grade must be in Grades and the position label in Positions.
type EligibilityRule struct {
	Label     string
	Grades    map[int]bool
	Positions map[string]bool
}

func (r EligibilityRule) Matches(grade int, position string) bool {
	return r.Grades[grade] && r.Positions[position]
}

// RuleTable is the static eligibility configuration. Every (day category,
// role) pair the rotation engine can ask for must resolve to a non-empty
// rule; Validate enforces that at startup.
type RuleTable map[RuleKey]EligibilityRule

// DefaultRules mirrors the site's standing duty-assignment standard.
func DefaultRules() RuleTable {
	return RuleTable{
		{DayCategoryHoliday, RoleMain}: {
			Label:     "휴무일 총당직",
			Grades:    map[int]bool{1: true, 2: true},
			Positions: map[string]bool{"수석": true, "부장": true, "차장": true},
		},
		{DayCategoryHoliday, RoleSub}: {
			Label:     "휴무일 부당직",
			Grades:    map[int]bool{3: true, 4: true},
			Positions: map[string]bool{"대리": true, "사원": true},
		},
		{DayCategoryWeekday, RoleMain}: {
			Label:     "평일 총당직",
			Grades:    map[int]bool{2: true},
			Positions: map[string]bool{"과장": true},
		},
		{DayCategoryWeekday, RoleSub}: {
			Label:     "평일 부당직",
			Grades:    map[int]bool{3: true, 4: true},
			Positions: map[string]bool{"대리": true, "사원": true},
		},
	}
}

// Validate confirms the table covers all four rule keys with non-empty
// grade and position sets.
func (t RuleTable) Validate() error {
	for _, cat := range []DayCategory{DayCategoryHoliday, DayCategoryWeekday} {
		for _, role := range []DutyRole{RoleMain, RoleSub} {
			rule, ok := t[RuleKey{cat, role}]
			if !ok {
				return fmt.Errorf("eligibility rule missing for %s/%s", cat, role)
			}
			if len(rule.Grades) == 0 || len(rule.Positions) == 0 {
				return fmt.Errorf("eligibility rule for %s/%s is empty", cat, role)
			}
		}
	}
	return nil
}
