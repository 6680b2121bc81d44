package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/holidays"
	"github.com/m04kA/SMC-AvailabilityService/internal/payload"
	holidaysService "github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

const (
	defaultConfigPath = "config.toml"
	envConfigPath     = "AVAILABILITY_CONFIG"
)

// application собранные зависимости сервиса
type application struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics // nil, если метрики выключены
	useCase *getAvailableSlotsUC.UseCase
	holiday *holidaysService.Service
}

// configPath путь к конфигу: флаг, затем AVAILABILITY_CONFIG, затем config.toml
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(envConfigPath); env != "" {
		return env
	}
	return defaultConfigPath
}

// addConfigFlag регистрирует --config у подкоманды
func addConfigFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVar(path, "config", "", "path to config.toml (default $AVAILABILITY_CONFIG or ./config.toml)")
}

// newApplication собирает use case и его зависимости из конфигурации
func newApplication(cfg *config.Config, log *logger.Logger) (*application, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	calendar, err := holidays.NewCalendar(cfg.Holidays.Country, cfg.Holidays.Extra)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday calendar: %w", err)
	}

	app := &application{
		cfg:     cfg,
		log:     log,
		holiday: holidaysService.NewService(calendar, cfg.Holidays.Country, log),
	}
	app.useCase = getAvailableSlotsUC.NewUseCase(
		payload.NewNormalizer(location),
		calendar,
		location,
		log,
	)

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New(cfg.Metrics.ServiceName)
		app.useCase.WithMetrics(app.metrics)
	}

	log.Info("Engine initialized (timezone=%s, holidays=%s, extra_dates=%d, metrics=%t)",
		location, cfg.Holidays.Country, len(cfg.Holidays.Extra), cfg.Metrics.Enabled)

	return app, nil
}
