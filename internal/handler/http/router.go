package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	logHandler LogHandler,
	requestHandler RequestHandler,
	activityHandler ActivityHandler,
	reportHandler ReportHandler,
	reconcileHandler ReconcileHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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
		r.Post("/logs", logHandler.Create)

		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/activity", activityHandler.GetRange)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Route("/leave", func(r chi.Router) {
				r.Post("/", requestHandler.CreateLeave)
				r.Get("/pending", requestHandler.ListPendingLeave)
				r.Post("/{id}/review", requestHandler.ReviewLeave)
			})
			r.Route("/mission", func(r chi.Router) {
				r.Post("/", requestHandler.CreateMission)
				r.Get("/pending", requestHandler.ListPendingMissions)
				r.Post("/{id}/review", requestHandler.ReviewMission)
			})
			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", requestHandler.CreateOvertime)
				r.Get("/pending", requestHandler.ListPendingOvertime)
				r.Post("/{id}/review", requestHandler.ReviewOvertime)
			})
			r.Route("/manual-log", func(r chi.Router) {
				r.Post("/", requestHandler.CreateManualLog)
				r.Get("/pending", requestHandler.ListPendingManualLogs)
				r.Post("/{id}/review", requestHandler.ReviewManualLog)
			})
		})

		r.Get("/reports", reportHandler.ListByDate)

		r.Route("/reconcile", func(r chi.Router) {
			r.Post("/runs", reconcileHandler.TriggerRun)
		})
	})
	return r
}
