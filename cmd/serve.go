package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getHolidaysHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_holidays"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func newServeCommand() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expone el cálculo de disponibilidad por HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath(configFlag))
		},
	}
	addConfigFlag(cmd, &configFlag)

	return cmd
}

func runServe(ctx context.Context, path string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", path)

	app, err := newApplication(cfg, log)
	if err != nil {
		log.Error("Failed to initialize application: %v", err)
		return err
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(app),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

// newRouter настраивает маршруты и middleware
func newRouter(app *application) *mux.Router {
	cfg := app.cfg
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mux.MiddlewareFunc(middleware.CORS(middleware.CORSPolicy{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
	})))

	// Добавляем metrics middleware (если метрики включены)
	if app.metrics != nil {
		r.Use(middleware.MetricsMiddleware(app.metrics))
		r.Handle(cfg.Metrics.Path, app.metrics.Handler()).Methods(http.MethodGet)
		app.log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Календарь нерабочих дней
	r.HandleFunc("/api/v1/holidays/{year:[0-9]+}",
		getHolidaysHandler.NewHandler(app.holiday, app.log).Handle).Methods(http.MethodGet)

	// Расчет доступности
	compute := http.Handler(http.HandlerFunc(getAvailableSlotsHandler.NewHandler(app.useCase, app.log).Handle))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).
			WithIdleTTL(time.Duration(cfg.RateLimit.IdleTTL) * time.Second).
			WithTrustForwardedFor(cfg.RateLimit.TrustForwardedFor)
		compute = limiter.Middleware(compute)
		app.log.Info("Rate limit enabled: %.1f req/s, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	r.Handle("/", compute).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/api/v1/availability", compute).Methods(http.MethodPost, http.MethodOptions)

	return r
}
