package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/shiftboard/shiftboard-backend-go/internal/config"
)

func NewRouter(cfg *config.Config, dashboardHandler DashboardHandler, overrideHandler OverrideHandler, settingsHandler SettingsHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.GetDashboard)

		r.Post("/feed/reload", dashboardHandler.ReloadFeed)

		r.Route("/days", func(r chi.Router) {
			r.Get("/", dashboardHandler.ListDays)
			r.Get("/upcoming", dashboardHandler.UpcomingDays)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", dashboardHandler.ListLeaves)
			r.Get("/pending", dashboardHandler.PendingLeaves)
		})

		r.Get("/stats/monthly", dashboardHandler.MonthlyStats)

		r.Route("/overrides", func(r chi.Router) {
			r.Get("/", overrideHandler.ListOverrides)
			r.Put("/{date}", overrideHandler.PutOverride)
			r.Delete("/{date}", overrideHandler.DeleteOverride)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", settingsHandler.GetSettings)
			r.Put("/", settingsHandler.UpdateSettings)
		})

		r.Get("/export/csv", dashboardHandler.ExportCSV)
	})

	return r
}
