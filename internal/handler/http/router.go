package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/grupo-santin/obras-backend-go/internal/handler/http/middleware"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Master    MasterHandler
	TimeEntry TimeEntryHandler
	Roster    RosterHandler
	Dashboard DashboardHandler
	Export    ExportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "obras-santin"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/headcount", h.Employee.HeadcountSummary)
				r.Get("/export", h.Export.ExportEmployees)
				r.Get("/{matricula}", h.Employee.GetEmployee)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{matricula}", h.Employee.UpdateEmployee)
					r.Delete("/{matricula}", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/job-functions", func(r chi.Router) {
				r.Get("/", h.Master.ListJobFunctions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Master.AddJobFunction)
					r.Delete("/{name}", h.Master.DeleteJobFunction)
				})
			})

			r.Route("/equipment", func(r chi.Router) {
				r.Get("/", h.Master.ListEquipment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Master.AddEquipment)
					r.Delete("/{tag}", h.Master.DeleteEquipment)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Get("/", h.TimeEntry.ListTimeEntries)
				r.Get("/export", h.Export.ExportTimeEntries)
				r.Post("/", h.TimeEntry.CreateTimeEntry)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Delete("/{id}", h.TimeEntry.DeleteTimeEntry)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.Get("/", h.Roster.ListRoster)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", h.Roster.IngestRoster)
					r.Post("/upload", h.Roster.UploadRoster)
					r.Delete("/{date}", h.Roster.DeleteRosterDate)
				})
			})

			r.Route("/dashboards", func(r chi.Router) {
				r.Get("/attendance", h.Dashboard.AttendanceDashboard)
				r.Get("/attendance/presence", h.Dashboard.PresenceSeries)
				r.Get("/attendance/situations", h.Dashboard.SituationBreakdown)
				r.Get("/productivity", h.Dashboard.ProductivityDashboard)
				r.Get("/productivity/months", h.Dashboard.ProductivityMonths)
			})
		})
	})
	return r
}
