package http

import (
	"log/slog"
	"os"

	"github.com/das-hq/duty-backend-go/internal/config"
	"github.com/das-hq/duty-backend-go/internal/handler/http/middleware"
	"github.com/das-hq/duty-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Assignment AssignmentHandler
	Change     ChangeHandler
	Payment    PaymentHandler
	Log        LogHandler
	Contact    ContactHandler
}

// NewRouter wires the API. Read endpoints are open on the site network;
// every mutation sits behind the administrator token.
func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "duty-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Open reads
		r.Get("/employees", h.Employee.ListEmployees)
		r.Get("/employees/{id}", h.Employee.GetEmployee)
		r.Get("/assignments", h.Assignment.ListMonth)
		r.Get("/assignments/next", h.Assignment.NextAssignee)
		r.Get("/assignments/{assignmentID}/changes", h.Change.ListByAssignment)
		r.Get("/changes", h.Change.ListMonth)
		r.Get("/payments", h.Payment.ListMonth)
		r.Get("/payments/summary", h.Payment.SummarizeByBusinessUnit)
		r.Get("/payments/export", h.Payment.ExportMonth)
		r.Get("/logs", h.Log.ListMonth)
		r.Get("/logs/lookup", h.Log.GetLog)
		r.Get("/contacts", h.Contact.ListContacts)
		r.Get("/contacts/{employeeID}", h.Contact.GetContact)

		// Admin-only writes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AdminRequired(jwtService.JWTAuth()))

			r.Post("/employees", h.Employee.CreateEmployee)
			r.Put("/employees/{id}", h.Employee.UpdateEmployee)
			r.Delete("/employees/{id}", h.Employee.DeleteEmployee)

			r.Post("/assignments", h.Assignment.CreateAssignment)
			r.Put("/assignments/{id}", h.Assignment.UpdateAssignment)
			r.Delete("/assignments/{id}", h.Assignment.DeleteAssignment)
			r.Post("/assignments/generate", h.Assignment.GenerateMonth)

			r.Post("/changes", h.Change.RecordChange)

			r.Post("/payments/calculate", h.Payment.CalculateMonth)
			r.Post("/payments/mark-paid", h.Payment.MarkPaid)

			r.Post("/logs", h.Log.SaveLog)
			r.Post("/logs/{id}/request-approval", h.Log.RequestApproval)
			r.Post("/logs/{id}/approve", h.Log.ApproveLog)
			r.Post("/logs/{id}/reject", h.Log.RejectLog)

			r.Put("/contacts", h.Contact.UpsertContact)
		})
	})

	return r
}
