package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mkpp-service/internal/api"
	"mkpp-service/internal/auth"
	"mkpp-service/internal/booking"
	"mkpp-service/internal/config"
	"mkpp-service/internal/logger"
	"mkpp-service/internal/metrics"
	"mkpp-service/internal/repository"
	"mkpp-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	loc, err := cfg.Location()
	if err != nil {
		zl.Warn("Falling back to UTC+3", zap.Error(err))
	}
	cal := booking.NewCalendar(loc)
	m := metrics.New(prometheus.DefaultRegisterer)

	repo := repository.NewSessionRepository(cfg.SessionTTL, func() *booking.Desk {
		return booking.NewDesk(cal.Today())
	})
	svc := service.NewBookingService(repo, cal, service.NewNotifyService(zl, m), m, zl)
	jobs := service.NewJobService(repo, m, zl)

	c := cron.New()
	if _, err := c.AddFunc(cfg.SweepSchedule, func() { jobs.SweepExpiredSessions() }); err != nil {
		zl.Fatal("Invalid sweep schedule", zap.String("schedule", cfg.SweepSchedule), zap.Error(err))
	}
	c.Start()

	page, err := api.NewPageHandler(svc, zl)
	if err != nil {
		zl.Fatal("Failed to load page template", zap.Error(err))
	}

	handler := api.NewRouter(api.RouterOptions{
		Booking:        api.NewBookingHandler(svc, zl),
		Page:           page,
		Visitors:       auth.NewVisitors(cfg.SessionSecret, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction(), zl),
		Limiter:        api.NewSubmitLimiter(cfg.SubmitRate, cfg.SubmitBurst, cfg.SessionTTL, zl),
		Metrics:        promhttp.Handler(),
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            zl,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		zl.Info("Shutting down...")
		<-c.Stop().Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()

	zl.Info("Server running", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatal("Server error", zap.Error(err))
	}
}
