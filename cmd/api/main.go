package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/unand-tendik/tendik-backend-go/internal/config"
	appHTTP "github.com/unand-tendik/tendik-backend-go/internal/handler/http"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/cron"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/email"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/oauth"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/storage"
	"github.com/unand-tendik/tendik-backend-go/internal/repository/postgresql"
	activityService "github.com/unand-tendik/tendik-backend-go/internal/service/activity"
	attendanceService "github.com/unand-tendik/tendik-backend-go/internal/service/attendance"
	serviceAuth "github.com/unand-tendik/tendik-backend-go/internal/service/auth"
	cutiService "github.com/unand-tendik/tendik-backend-go/internal/service/cuti"
	dashboardService "github.com/unand-tendik/tendik-backend-go/internal/service/dashboard"
	"github.com/unand-tendik/tendik-backend-go/internal/service/file"
	rekapService "github.com/unand-tendik/tendik-backend-go/internal/service/rekap"
	reportService "github.com/unand-tendik/tendik-backend-go/internal/service/report"
	settingService "github.com/unand-tendik/tendik-backend-go/internal/service/setting"
	taskService "github.com/unand-tendik/tendik-backend-go/internal/service/task"
	userService "github.com/unand-tendik/tendik-backend-go/internal/service/user"
)

const shutdownTimeout = 15 * time.Second

func newLogger(cfg *config.Config) (*slog.Logger, slog.Level) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tendik-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	return logger, level
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger, level := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	if cfg.App.MigrateOnStart {
		if err := db.Migrate(context.Background()); err != nil {
			log.Fatal("Error running migrations: ", err)
		}
	}

	loc := cfg.Location()
	clk := clock.New(loc)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	cutiRepo := postgresql.NewCutiRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	rekapRepo := postgresql.NewRekapRepository(db, loc)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var googleSvc oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleSvc = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	activitySvc := activityService.NewActivityService(activityRepo, clk, activityService.Config{
		Workers:      cfg.Activity.Workers,
		QueueSize:    cfg.Activity.QueueSize,
		WriteTimeout: cfg.Activity.WriteTimeout,
	})

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, activitySvc)
	userSvc := userService.NewUserService(userRepo, activitySvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingRepo, activitySvc, clk)
	taskSvc := taskService.NewTaskService(taskRepo, activitySvc, clk)
	reportSvc := reportService.NewReportService(reportRepo, file.NewFileService(fileStorage), activitySvc, clk)
	cutiSvc := cutiService.NewCutiService(cutiRepo, emailSvc, activitySvc)
	settingSvc := settingService.NewSettingService(settingRepo, activitySvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, activityRepo, clk)
	rekapSvc := rekapService.NewRekapService(rekapRepo, clk)

	scheduler := cron.NewScheduler()
	cron.NewHousekeepingJobs(activitySvc, JWTService, clk, cfg.Activity.RetentionDays).RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		LogLevel:       level,
		AllowedOrigins: cfg.App.AllowedOrigins,
		UploadDir:      fileStorage.Dir(),
		UploadBaseURL:  cfg.Storage.BaseURL,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, googleSvc, cfg.App.FrontendURL),
		User:       appHTTP.NewUserHandler(userSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Report:     appHTTP.NewReportHandler(reportSvc, cfg.Storage.MaxAttachment, cfg.Storage.MaxFileSize),
		Cuti:       appHTTP.NewCutiHandler(cutiSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
		Rekap:      appHTTP.NewRekapHandler(rekapSvc),
		Activity:   appHTTP.NewActivityHandler(activitySvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	scheduler.Stop()
	activitySvc.Close()
	db.Close()
	slog.Info("Server stopped")
}
