package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/das-hq/duty-backend-go/internal/config"
	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/change"
	"github.com/das-hq/duty-backend-go/internal/domain/contact"
	"github.com/das-hq/duty-backend-go/internal/domain/dutylog"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/das-hq/duty-backend-go/internal/repository/postgresql"
)

var (
	factories   = []string{"창원1공장", "창원2공장"}
	departments = []string{"생산1팀", "생산2팀", "정비팀", "품질관리팀", "안전환경팀", "경영지원팀"}
	units       = []string{"엔진사업부", "변속기사업부", "소재사업부"}

	surnames = []string{"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임"}
	given    = []string{"민준", "서연", "도윤", "하은", "지호", "수아", "예준", "지우", "현우", "서준", "지민", "유진"}

	// Positions per grade; the rotation rules key off both.
	positionsByGrade = map[int][]string{
		1: {"수석", "부장"},
		2: {"차장", "과장"},
		3: {"대리"},
		4: {"사원"},
	}

	changeReasons = []change.Reason{
		change.ReasonBusinessTrip, change.ReasonSecondment, change.ReasonTraining,
		change.ReasonFamilyEvent, change.ReasonSickLeave, change.ReasonOther,
	}
)

func koreanName() string {
	return surnames[gofakeit.Number(0, len(surnames)-1)] + given[gofakeit.Number(0, len(given)-1)]
}

func gradeFor(i int) int {
	// Roughly a pyramid: few seniors, many juniors.
	switch {
	case i%20 == 0:
		return 1
	case i%5 == 0:
		return 2
	case i%2 == 0:
		return 3
	default:
		return 4
	}
}

func main() {
	employeeCount := flag.Int("employees", 200, "number of employees to seed")
	months := flag.Int("months", 6, "months of roster history to seed, ending this month")
	dryRun := flag.Bool("dry-run", false, "report what would be seeded without writing")
	flag.Parse()

	gofakeit.Seed(42)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	if *dryRun {
		fmt.Printf("dry run: would seed %d employees, %d months of assignments, contacts and 3 months of logs\n",
			*employeeCount, *months)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Failed to run database migrations: ", err)
	}
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	ctx := context.Background()
	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	changeRepo := postgresql.NewChangeRepository(db)
	contactRepo := postgresql.NewContactRepository(db)
	logRepo := postgresql.NewLogRepository(db)

	employees := seedEmployees(ctx, employeeRepo, *employeeCount)
	assignments := seedAssignments(ctx, assignmentRepo, employees, *months)
	seedChanges(ctx, changeRepo, assignmentRepo, employees, assignments)
	seedContacts(ctx, contactRepo, employees)
	seedLogs(ctx, logRepo)

	fmt.Printf("seeded %d employees, %d assignments\n", len(employees), len(assignments))
}

func seedEmployees(ctx context.Context, repo employee.EmployeeRepository, count int) []employee.Employee {
	var employees []employee.Employee
	for i := 0; i < count; i++ {
		grade := gradeFor(i)
		positions := positionsByGrade[grade]

		emp := employee.Employee{
			EmployeeNo:   fmt.Sprintf("E%d", 1001+i),
			Name:         koreanName(),
			Department:   departments[gofakeit.Number(0, len(departments)-1)],
			Position:     positions[gofakeit.Number(0, len(positions)-1)],
			Grade:        grade,
			Factory:      factories[i%len(factories)],
			BusinessUnit: units[gofakeit.Number(0, len(units)-1)],
			PhoneHome:    gofakeit.Phone(),
			PhoneMobile:  fmt.Sprintf("010-%04d-%04d", gofakeit.Number(1000, 9999), gofakeit.Number(1000, 9999)),
			BankAccount:  fmt.Sprintf("%03d-%06d-%02d", gofakeit.Number(100, 999), gofakeit.Number(100000, 999999), gofakeit.Number(10, 99)),
			IsActive:     true,
		}

		created, err := repo.Create(ctx, emp)
		if err != nil {
			log.Fatal("Failed to seed employee: ", err)
		}
		employees = append(employees, created)
	}
	return employees
}

// pools groups eligible employees per rule key, ordered by employee number.
func pools(employees []employee.Employee) map[assignment.RuleKey][]employee.Employee {
	rules := assignment.DefaultRules()
	out := map[assignment.RuleKey][]employee.Employee{}
	for key, rule := range rules {
		for _, emp := range employees {
			if rule.Matches(emp.Grade, emp.Position) {
				out[key] = append(out[key], emp)
			}
		}
	}
	return out
}

func seedAssignments(ctx context.Context, repo assignment.AssignmentRepository, employees []employee.Employee, months int) []assignment.Assignment {
	byRule := pools(employees)
	cursors := map[assignment.RuleKey]int{}

	pick := func(category assignment.DayCategory, role assignment.DutyRole) (employee.Employee, bool) {
		key := assignment.RuleKey{DayCategory: category, Role: role}
		pool := byRule[key]
		if len(pool) == 0 {
			return employee.Employee{}, false
		}
		emp := pool[cursors[key]%len(pool)]
		cursors[key]++
		return emp, true
	}

	now := time.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := currentMonth.AddDate(0, -(months - 1), 0)

	var created []assignment.Assignment
	for date := start; date.Before(currentMonth.AddDate(0, 1, 0)); date = date.AddDate(0, 0, 1) {
		category := assignment.CategoryForDate(date)

		shifts := []assignment.ShiftType{assignment.ShiftNight}
		if category == assignment.DayCategoryHoliday {
			shifts = []assignment.ShiftType{assignment.ShiftDay, assignment.ShiftNight}
		}

		status := assignment.StatusConfirmed
		if date.Before(currentMonth) {
			status = assignment.StatusCompleted
		}

		for _, shift := range shifts {
			main, ok := pick(category, assignment.RoleMain)
			if !ok {
				continue
			}
			sub, ok := pick(category, assignment.RoleSub)
			if !ok {
				continue
			}

			a, err := repo.Create(ctx, assignment.Assignment{
				DutyDate:    date,
				DayOfWeek:   assignment.DayOfWeekLabel(date),
				ShiftType:   shift,
				DayCategory: category,
				MainDutyID:  main.ID,
				SubDutyID:   sub.ID,
				Status:      status,
			})
			if err != nil {
				log.Fatal("Failed to seed assignment: ", err)
			}
			created = append(created, a)
		}
	}
	return created
}

func seedChanges(ctx context.Context, repo change.ChangeRepository, assignmentRepo assignment.AssignmentRepository, employees []employee.Employee, assignments []assignment.Assignment) {
	byRule := pools(employees)

	for _, a := range assignments {
		if gofakeit.Number(1, 100) > 12 {
			continue
		}

		role := assignment.RoleMain
		original := a.MainDutyID
		if gofakeit.Bool() {
			role = assignment.RoleSub
			original = a.SubDutyID
		}

		pool := byRule[assignment.RuleKey{DayCategory: a.DayCategory, Role: role}]
		var replacement employee.Employee
		found := false
		for _, emp := range pool {
			if emp.ID != original {
				replacement = emp
				found = true
				break
			}
		}
		if !found {
			continue
		}

		if _, err := repo.Create(ctx, change.Change{
			AssignmentID:       a.ID,
			Role:               role,
			OriginalEmployeeID: original,
			NewEmployeeID:      replacement.ID,
			Reason:             changeReasons[gofakeit.Number(0, len(changeReasons)-1)],
			ChangeDate:         a.DutyDate.AddDate(0, 0, -gofakeit.Number(1, 5)),
		}); err != nil {
			log.Fatal("Failed to seed change: ", err)
		}

		update := assignment.UpdateAssignmentRequest{ID: a.ID}
		status := string(assignment.StatusChanged)
		update.Status = &status
		if role == assignment.RoleMain {
			update.MainDutyID = &replacement.ID
		} else {
			update.SubDutyID = &replacement.ID
		}
		if _, err := assignmentRepo.Update(ctx, update); err != nil {
			log.Fatal("Failed to apply seeded change: ", err)
		}
	}
}

func seedContacts(ctx context.Context, repo contact.ContactRepository, employees []employee.Employee) {
	for _, emp := range employees {
		if _, err := repo.Upsert(ctx, contact.EmergencyContact{
			EmployeeID:  emp.ID,
			PhoneHome:   emp.PhoneHome,
			PhoneMobile: emp.PhoneMobile,
			Note:        "",
		}); err != nil {
			log.Fatal("Failed to seed contact: ", err)
		}
	}
}

func seedLogs(ctx context.Context, repo dutylog.LogRepository) {
	now := time.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := currentMonth.AddDate(0, -2, 0)

	for date := start; date.Before(now); date = date.AddDate(0, 0, 1) {
		for _, factory := range factories {
			workforce := map[string]dutylog.DepartmentWorkforce{}
			for _, dept := range departments[:3] {
				workforce[dept] = dutylog.DepartmentWorkforce{
					OvertimeCount: gofakeit.Number(0, 12),
					NightCount:    gofakeit.Number(0, 6),
				}
			}
			construction := map[string]dutylog.ConstructionBlock{
				"주간": {
					CompanyCount: gofakeit.Number(0, 4),
					Headcount:    gofakeit.Number(0, 30),
					HotWork:      gofakeit.Bool(),
				},
			}

			status := dutylog.StatusApproved
			if date.AddDate(0, 0, 3).After(now) {
				status = dutylog.StatusDraft
			}

			l := dutylog.DutyLog{
				LogDate:            date,
				Factory:            factory,
				ShiftType:          assignment.ShiftNight,
				WorkforceStatus:    workforce,
				ConstructionStatus: construction,
				Issues:             "",
				SpecialNotes:       "",
				ApprovalStatus:     status,
			}

			created, err := repo.Create(ctx, l)
			if err != nil {
				log.Fatal("Failed to seed duty log: ", err)
			}
			if status == dutylog.StatusApproved {
				approvedAt := date.AddDate(0, 0, 1)
				if _, err := repo.UpdateApproval(ctx, created.ID, dutylog.StatusApproved, &approvedAt, nil); err != nil {
					log.Fatal("Failed to approve seeded duty log: ", err)
				}
			}
		}
	}
}
