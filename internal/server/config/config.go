// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${OTLP_ENDPOINT}
// - проставление дефолтов
// - валидацию (чтобы сервер не стартовал с дырявыми настройками)
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/stretchr/testify/assert/yaml"
)

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env       string          `yaml:"env"` // dev|stage|prod
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`   // лимит размера тела запроса
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Logger string `yaml:"logger"` // zap
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

// TelemetryConfig — настройки экспорта трейсов.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
	// Endpoint — адрес коллектора трейсов.
	// Может содержать ${OTLP_ENDPOINT}; дефолт http://localhost:4317.
	Endpoint string `yaml:"endpoint"`
	// ServiceName попадает в тег service.name каждого спана.
	ServiceName string `yaml:"service_name"`
	// ExportInterval — как часто отправлять накопленные спаны.
	ExportInterval time.Duration `yaml:"export_interval"`
	// BufferSize — размер буфера коллектора спанов.
	BufferSize int `yaml:"buffer_size"`
}

// DefaultOTLPEndpoint — адрес коллектора по умолчанию,
// если не задан ни в yaml, ни через OTLP_ENDPOINT.
const DefaultOTLPEndpoint = "http://localhost:4317"

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	// Подставляем переменные окружения в текст YAML:
	// endpoint: "${OTLP_ENDPOINT}" -> endpoint: "реальное_значение"
	expanded := ExpandEnvStrict(string(raw))
	raw = []byte(expanded)

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом ApplyDefaults() подставит дефолт (для telemetry.endpoint)
// или Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Log.Logger == "" {
		cfg.Log.Logger = "zap"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	// Если ${OTLP_ENDPOINT} не подставился или endpoint пустой — берём дефолт
	if cfg.Telemetry.Endpoint == "" || containsPlaceholder(cfg.Telemetry.Endpoint) {
		cfg.Telemetry.Endpoint = DefaultOTLPEndpoint
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "userdir-server"
	}
	if cfg.Telemetry.ExportInterval == 0 {
		cfg.Telemetry.ExportInterval = 5 * time.Second
	}
	if cfg.Telemetry.BufferSize == 0 {
		cfg.Telemetry.BufferSize = 1000
	}
}

// containsPlaceholder определяет, осталась ли в значении неподставленная ${VAR}.
func containsPlaceholder(s string) bool {
	return regexp.MustCompile(`\$\{[A-Z0-9_]+\}`).MatchString(s)
}

// Validate проверяет, что конфиг заполнен корректно и безопасно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host обязателен")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes не может быть отрицательным: %d", c.Server.MaxBodyBytes)
	}
	if c.Telemetry.Enabled {
		if c.Telemetry.Endpoint == "" {
			return errors.New("telemetry.endpoint обязателен при telemetry.enabled=true")
		}
		if c.Telemetry.BufferSize <= 0 {
			return errors.New("telemetry.buffer_size должен быть > 0")
		}
		if c.Telemetry.ExportInterval <= 0 {
			return errors.New("telemetry.export_interval должен быть > 0")
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level должен быть debug|info|warn|error (сейчас %q)", c.Log.Level)
	}
	return nil
}

// ApplyEnvOverrides — опциональная штука: даёт возможность переопределять
// некоторые настройки через переменные окружения без ${...} в yaml.
// Например SERVER_PORT=9090 переопределит server.port,
// а OTLP_ENDPOINT — telemetry.endpoint.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("OTLP_ENDPOINT"); v != "" {
		c.Telemetry.Endpoint = v
	}
}

// Addr возвращает адрес прослушивания в виде host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
