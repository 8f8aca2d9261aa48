package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pim-intern/attendance-backend/internal/config"
	appHTTP "github.com/pim-intern/attendance-backend/internal/handler/http"
	"github.com/pim-intern/attendance-backend/internal/pkg/civiltime"
	"github.com/pim-intern/attendance-backend/internal/pkg/cron"
	"github.com/pim-intern/attendance-backend/internal/pkg/database"
	"github.com/pim-intern/attendance-backend/internal/pkg/jwt"
	"github.com/pim-intern/attendance-backend/internal/repository/postgresql"
	activityLogService "github.com/pim-intern/attendance-backend/internal/service/activitylog"
	attendanceService "github.com/pim-intern/attendance-backend/internal/service/attendance"
	serviceAuth "github.com/pim-intern/attendance-backend/internal/service/auth"
	"golang.org/x/sync/errgroup"
)

const appName = "pim-attendance"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(
		slog.String("app", appName),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	clock := civiltime.NewResolver(cfg.Attendance.UTCOffsetHours, nil)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	activityLogRepo := postgresql.NewActivityLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	activityLogSvc := activityLogService.NewActivityLogService(activityLogRepo, clock)
	authService := serviceAuth.NewAuthService(userRepo, JWTService, activityLogSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.AttendancePolicy(), clock, activityLogSvc)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        appName,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, appHTTP.Handlers{
		Health:      appHTTP.NewHealthHandler(db, cfg.App.Version),
		Auth:        appHTTP.NewAuthHandler(authService),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		ActivityLog: appHTTP.NewActivityLogHandler(activityLogSvc),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	if cfg.Cron.ProvisionEnabled {
		cron.NewAttendanceJobs(attendanceRepo, clock, cfg.Cron.ProvisionInterval).RegisterJobs(scheduler)
		scheduler.Start(ctx)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "office", cfg.Office.Name, "zone", clock.Label())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		scheduler.Stop()
		err := server.Shutdown(shutdownCtx)
		// Flush pending activity log writes before the pool closes
		activityLogSvc.Wait()
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
