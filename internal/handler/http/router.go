package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/marinerh/personnel-backend/internal/config"
	"github.com/marinerh/personnel-backend/internal/domain/user"
	"github.com/marinerh/personnel-backend/internal/handler/http/middleware"
	"github.com/marinerh/personnel-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth     AuthHandler
	Employee EmployeeHandler
	Leave    LeaveHandler
	Absence  AbsenceHandler
	Grade    CareerHandler
	Function CareerHandler
	Master   MasterHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "personnel-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			canWrite := middleware.RequireRole(user.RoleAdmin, user.RoleManager)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.With(canWrite).Post("/", h.Employee.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetByID)
					r.Get("/status", h.Employee.Status)
					r.With(canWrite).Put("/", h.Employee.Update)
					r.With(middleware.AdminOnly).Delete("/", h.Employee.Delete)
				})
			})

			r.Route("/employees/{employeeID}/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Get("/types", h.Leave.ListTypes)
				r.Get("/balance", h.Leave.Balance)
				r.With(canWrite).Post("/", h.Leave.Create)
			})
			r.Route("/leaves/{id}", func(r chi.Router) {
				r.With(canWrite).Put("/", h.Leave.Update)
				r.With(canWrite).Delete("/", h.Leave.Delete)
			})

			r.Route("/employees/{employeeID}/absences", func(r chi.Router) {
				r.Get("/", h.Absence.List)
				r.With(canWrite).Post("/", h.Absence.Create)
			})
			r.Route("/absences/{id}", func(r chi.Router) {
				r.With(canWrite).Put("/", h.Absence.Update)
				r.With(canWrite).Patch("/end-date", h.Absence.SetEndDate)
				r.With(canWrite).Delete("/", h.Absence.Delete)
			})

			r.Route("/employees/{employeeID}/grades", func(r chi.Router) {
				r.Get("/", h.Grade.List)
				r.With(canWrite).Post("/", h.Grade.Create)
			})
			r.Route("/grades", func(r chi.Router) {
				r.Get("/hierarchy", h.Grade.Hierarchy)
				r.Route("/{id}", func(r chi.Router) {
					r.With(canWrite).Put("/", h.Grade.Update)
					r.With(canWrite).Delete("/", h.Grade.Delete)
				})
			})

			r.Route("/employees/{employeeID}/functions", func(r chi.Router) {
				r.Get("/", h.Function.List)
				r.With(canWrite).Post("/", h.Function.Create)
			})
			r.Route("/functions", func(r chi.Router) {
				r.Get("/hierarchy", h.Function.Hierarchy)
				r.Route("/{id}", func(r chi.Router) {
					r.With(canWrite).Put("/", h.Function.Update)
					r.With(canWrite).Delete("/", h.Function.Delete)
				})
			})

			r.Route("/employees/{employeeID}/bank-identities", func(r chi.Router) {
				r.Get("/", h.Master.ListBankIdentities)
				r.With(canWrite).Post("/", h.Master.CreateBankIdentity)
			})
			r.Route("/bank-identities/{id}", func(r chi.Router) {
				r.With(canWrite).Put("/", h.Master.UpdateBankIdentity)
				r.With(canWrite).Delete("/", h.Master.DeleteBankIdentity)
			})

			r.Route("/units", func(r chi.Router) {
				r.Get("/", h.Master.ListUnits)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateUnit)
					r.Put("/{id}", h.Master.UpdateUnit)
					r.Delete("/{id}", h.Master.DeleteUnit)
				})
			})
		})
	})
	return r
}
