package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/attendly/workforce-backend-go/internal/handler/http/middleware"
	"github.com/attendly/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	reportHandler ReportHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	settingsHandler SettingsHandler,
	appEnv string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Get("/monthly", reportHandler.GetMonthlyReport)
				r.Get("/day", reportHandler.GetDayStatus)
			})

			r.Route("/attendance/events", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListEvents)
				r.Post("/", attendanceHandler.RecordEvent)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateLeave)
				r.Get("/approved", leaveHandler.ListApproved)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/fixed", settingsHandler.ListFixedHolidays)
				r.Route("/pool", func(r chi.Router) {
					r.Get("/", settingsHandler.ListPoolHolidays)
					r.Post("/", settingsHandler.AssignPoolHoliday)
				})
				r.Get("/configured", settingsHandler.ListConfiguredHolidays)
				r.Get("/recurring", settingsHandler.ListRecurringRules)
			})

			r.Route("/shift-rules", func(r chi.Router) {
				r.Get("/", settingsHandler.ListShiftRules)
				r.Put("/", settingsHandler.UpsertShiftRules)
			})
		})
	})
	return r
}
