package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Префикс переменных окружения, переопределяющих значения из файла
const envPrefix = "AVAILABILITY_"

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Engine    EngineConfig    `toml:"engine"`
	Holidays  HolidaysConfig  `toml:"holidays"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Remote    RemoteConfig    `toml:"remote"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования; пустой File - вывод в stderr
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EngineConfig параметры расчета
type EngineConfig struct {
	Timezone string `toml:"timezone"`
}

// HolidaysConfig календарь нерабочих дней
type HolidaysConfig struct {
	Country string   `toml:"country"`
	Extra   []string `toml:"extra"` // дополнительные нерабочие даты YYYY-MM-DD
}

// CORSConfig заголовки CORS для HTTP режима
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	AllowedMethods []string `toml:"allowed_methods"`
	AllowedHeaders []string `toml:"allowed_headers"`
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	IdleTTL           int     `toml:"idle_ttl"`            // секунды до удаления неактивного клиента
	TrustForwardedFor bool    `toml:"trust_forwarded_for"` // только за доверенным прокси
}

// RemoteConfig адрес удаленного сервиса для команды post (таймаут в секундах)
type RemoteConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "availability",
		},
		Engine:   EngineConfig{Timezone: "America/Bogota"},
		Holidays: HolidaysConfig{Country: "CO"},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		},
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 10, Burst: 20, IdleTTL: 600},
		Remote:    RemoteConfig{URL: "http://localhost:8080/", Timeout: 10},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Отсутствующий файл не ошибка: используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location возвращает часовой пояс расчета
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Engine.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: engine.timezone %q: %v", ErrInvalidConfig, c.Engine.Timezone, err)
	}
	return loc, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with '/', got %q", ErrInvalidConfig, c.Metrics.Path)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 || c.RateLimit.IdleTTL <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second, burst and idle_ttl", ErrInvalidConfig)
	}
	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("%w: remote.timeout must be positive, got %d", ErrInvalidConfig, c.Remote.Timeout)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// applyEnv переопределяет отдельные ключи из переменных окружения AVAILABILITY_*
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":    &c.Logs.Level,
		"LOG_FILE":     &c.Logs.File,
		"TIMEZONE":     &c.Engine.Timezone,
		"HOLIDAYS":     &c.Holidays.Country,
		"REMOTE_URL":   &c.Remote.URL,
		"SERVICE_NAME": &c.Metrics.ServiceName,
		"METRICS_PATH": &c.Metrics.Path,
	}
	for key, target := range strs {
		if v, ok := lookup(envPrefix + key); ok {
			*target = v
		}
	}

	ints := map[string]*int{
		"HTTP_PORT":      &c.Server.HTTPPort,
		"REMOTE_TIMEOUT": &c.Remote.Timeout,
	}
	for key, target := range ints {
		v, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, envPrefix, key, v)
		}
		*target = n
	}

	if v, ok := lookup(envPrefix + "METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sMETRICS_ENABLED=%q is not a boolean", ErrInvalidConfig, envPrefix, v)
		}
		c.Metrics.Enabled = enabled
	}

	return nil
}
