package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(eventHandler EventHandler, adminHandler AdminHandler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-notify"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Post("/leave-created", eventHandler.LeaveCreated)
			r.Post("/leave-status-changed", eventHandler.LeaveStatusChanged)
			r.Post("/attendance-late", eventHandler.AttendanceLate)
			r.Post("/attendance-early-leave", eventHandler.AttendanceEarlyLeave)
			r.Post("/employee-created", eventHandler.EmployeeCreated)
			r.Post("/payroll-run-approved", eventHandler.PayrollRunApproved)
			r.Post("/payslip-ready", eventHandler.PayslipReady)
		})

		r.Get("/digest", adminHandler.ListDigest)
		r.Get("/settings", adminHandler.GetSettings)
		r.Post("/scheduler/run", adminHandler.RunScheduler)
	})

	return r
}
