package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/middleware"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

// RouterConfig carries the non-handler inputs of NewRouter.
type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	UploadDir      string
	UploadBaseURL  string
}

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Dashboard  DashboardHandler
	Attendance AttendanceHandler
	Task       TaskHandler
	Report     ReportHandler
	Cuti       CutiHandler
	Setting    SettingHandler
	Rekap      RekapHandler
	Activity   ActivityHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  cfg.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.UploadDir != "" {
		base := "/" + strings.Trim(cfg.UploadBaseURL, "/")
		fs := http.StripPrefix(base+"/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get(base+"/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/users", func(r chi.Router) {
				r.Get("/dashboard", h.Dashboard.GetUserDashboard)
				r.Get("/me", h.User.Me)
				r.Put("/me", h.User.UpdateMe)
				r.Post("/change-password", h.User.ChangePassword)
				r.Get("/{id}", h.User.GetByID)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/checkin", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/checkout", h.Attendance.CheckOut)
				r.Get("/history", h.Attendance.History)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.ListMine)
				r.With(middleware.RequirePermission(user.PermissionTaskCreate)).Post("/", h.Task.Create)
				r.Put("/{id}", h.Task.Update)
				r.Delete("/{id}", h.Task.Delete)
				r.Patch("/{id}/status", h.Task.UpdateStatus)
				r.Post("/{id}/note", h.Task.SaveNote)
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionReportCreate)).Post("/", h.Report.Create)
				r.Get("/", h.Report.List)
			})

			r.Route("/cuti", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionCutiCreate)).Post("/", h.Cuti.Create)
				r.Get("/", h.Cuti.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionCutiApprove))
					r.Put("/{id}/approve", h.Cuti.Approve)
					r.Put("/{id}/reject", h.Cuti.Reject)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Setting.GetAttendanceConfig)
				r.With(middleware.AdminOnly).Put("/", h.Setting.UpdateAttendanceConfig)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/dashboard", h.Dashboard.GetAdminDashboard)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Get("/{id}", h.User.GetByID)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})

				r.Get("/tasks", h.Task.List)
				r.Patch("/tasks/{id}/status", h.Task.UpdateStatus)
				r.Get("/task-stats", h.Task.Stats)

				r.Get("/cuti", h.Cuti.List)
				r.Get("/activity", h.Activity.List)
				r.Get("/export/attendance", h.Attendance.Export)

				r.Get("/laporan-rekap", h.Rekap.Generate)
				r.Get("/laporan-rekap/export", h.Rekap.Export)
			})
		})
	})
	return r
}
