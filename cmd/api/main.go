package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/das-hq/duty-backend-go/internal/config"
	appHTTP "github.com/das-hq/duty-backend-go/internal/handler/http"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/das-hq/duty-backend-go/internal/pkg/jwt"
	"github.com/das-hq/duty-backend-go/internal/pkg/notify"
	"github.com/das-hq/duty-backend-go/internal/repository/postgresql"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	assignmentService "github.com/das-hq/duty-backend-go/internal/service/assignment"
	authService "github.com/das-hq/duty-backend-go/internal/service/auth"
	changeService "github.com/das-hq/duty-backend-go/internal/service/change"
	contactService "github.com/das-hq/duty-backend-go/internal/service/contact"
	dutylogService "github.com/das-hq/duty-backend-go/internal/service/dutylog"
	employeeService "github.com/das-hq/duty-backend-go/internal/service/employee"
	paymentService "github.com/das-hq/duty-backend-go/internal/service/payment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "duty-backend"),
	)

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Failed to run database migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	rules := assignment.DefaultRules()
	if err := rules.Validate(); err != nil {
		log.Fatal("Invalid eligibility rules: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	changeRepo := postgresql.NewChangeRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	logRepo := postgresql.NewLogRepository(db)
	contactRepo := postgresql.NewContactRepository(db)

	txManager := postgresql.NewTxManager(db)
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var notifier notify.Notifier
	if cfg.App.Env == "production" {
		notifier = notify.NewWebhookNotifier(cfg.Webhook.URL)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	empService := employeeService.NewEmployeeService(employeeRepo)
	asgService := assignmentService.NewAssignmentService(assignmentRepo, employeeRepo, rules)
	chgService := changeService.NewChangeService(txManager, changeRepo, assignmentRepo, employeeRepo, notifier, logger)
	payService := paymentService.NewPaymentService(txManager, paymentRepo, assignmentRepo)
	logService := dutylogService.NewLogService(logRepo, notifier, logger)
	ctcService := contactService.NewContactService(contactRepo, employeeRepo)
	authSvc := authService.NewAuthService(cfg.Admin, jwtService)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(empService),
		Assignment: appHTTP.NewAssignmentHandler(asgService),
		Change:     appHTTP.NewChangeHandler(chgService),
		Payment:    appHTTP.NewPaymentHandler(payService),
		Log:        appHTTP.NewLogHandler(logService),
		Contact:    appHTTP.NewContactHandler(ctcService),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
