package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focusflow-api/core/cache"
	"focusflow-api/core/config"
	"focusflow-api/core/constants"
	"focusflow-api/core/database"
	"focusflow-api/core/jobs"
	"focusflow-api/core/logger"
	"focusflow-api/core/middleware"
	"focusflow-api/core/storage"
	"focusflow-api/core/validator"
	"focusflow-api/modules/calendar"
	"focusflow-api/modules/ritual"
	"focusflow-api/modules/schedule"
	scheduleservice "focusflow-api/modules/schedule/service"
	"focusflow-api/modules/session"
	sessionservice "focusflow-api/modules/session/service"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the API server, the background worker and the cron sweeps,
// and blocks until a shutdown signal arrives.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel)
	logger.Info("starting focusflow-api", "env", cfg.Server.Env, "port", cfg.Server.Port)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	c := cache.NewCache(cfg.Redis)
	defer c.Close()
	if err := c.Ping(context.Background()); err != nil {
		logger.Warn("redis unreachable, caching disabled", "error", err.Error())
	}

	queue := jobs.NewQueue(cfg.Redis)
	defer queue.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	mw := middleware.NewMiddleware(cfg)
	mw.Setup(e)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Modules. The schedule service is shared: calendar suggestions and
	// the retention sweep both go through it.
	scheduleSvc := schedule.Init(e, db, mw, c, cfg.Planner)
	sessionSvc := session.Init(e, db, mw, queue)
	ritual.Init(e, mw)
	calendar.Init(e, db, mw, scheduleSvc, cfg.Calendar)

	// Background worker for session summary archival.
	archiver := storage.NewArchiver(cfg.Storage)
	worker, mux := jobs.NewWorkerServer(cfg.Redis)
	mux.Handle(constants.TaskSessionArchive, sessionservice.NewArchiveTaskHandler(archiver))
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("worker server stopped", err)
		}
	}()

	// Periodic sweeps.
	scheduler := jobs.NewScheduler()
	registerSweeps(scheduler, cfg, scheduleSvc, sessionSvc)
	scheduler.Start()
	defer scheduler.Stop()

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	worker.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func registerSweeps(scheduler *jobs.Scheduler, cfg *config.Config, scheduleSvc scheduleservice.ScheduleServiceInterface, sessionSvc sessionservice.SessionServiceInterface) {
	// Hourly: abandon focus sessions left running past the max age.
	_ = scheduler.AddJob("0 * * * *", "sweep-stale-sessions", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := sessionSvc.SweepStale(ctx, cfg.Session.MaxAgeHours); err != nil {
			logger.Error("sweep-stale-sessions failed", err)
		}
	})

	// Nightly: drop stored suggestions past the retention window.
	_ = scheduler.AddJob("30 3 * * *", "purge-expired-suggestions", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := scheduleSvc.PurgeExpired(ctx, cfg.Session.RetentionDays); err != nil {
			logger.Error("purge-expired-suggestions failed", err)
		}
	})
}
