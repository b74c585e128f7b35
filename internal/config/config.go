package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/spf13/viper"
)

// Defaults for every configuration key.
const (
	DefaultDatabasePath  = "$HOME/.local/share/lifepath/lifepath.db"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultForecastYears = 10
	DefaultRenderMode    = "screen"
	DefaultServerAddr    = "127.0.0.1:8420"
	DefaultReadTimeout   = 5 * time.Second

	maxForecastYears = 50
)

// Config is the resolved application configuration.
type Config struct {
	Database DatabaseConfig
	Logging  LoggingConfig
	Render   RenderConfig
	Server   ServerConfig
	Forecast ForecastConfig
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ForecastConfig controls the personal year forecast included in reports.
type ForecastConfig struct {
	Years int
}

// RenderConfig selects the default terminal render mode.
type RenderConfig struct {
	Mode string
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string
	ReadTimeout time.Duration
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("forecast.years", DefaultForecastYears)
	v.SetDefault("render.mode", DefaultRenderMode)
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
}

// Load reads the configuration from v, applying defaults and validating it.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, fmt.Errorf("%w: nil viper instance", common.ErrMissingConfig)
	}
	SetDefaults(v)

	cfg := Config{
		Database: DatabaseConfig{
			Path: ExpandPath(v.GetString("database.path")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Forecast: ForecastConfig{
			Years: v.GetInt("forecast.years"),
		},
		Render: RenderConfig{
			Mode: v.GetString("render.mode"),
		},
		Server: ServerConfig{
			Addr:        v.GetString("server.addr"),
			ReadTimeout: v.GetDuration("server.read_timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is empty", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.Logging.Format)
	}
	if c.Forecast.Years < 1 || c.Forecast.Years > maxForecastYears {
		return fmt.Errorf("%w: forecast.years must be between 1 and %d, got %d",
			common.ErrInvalidConfig, maxForecastYears, c.Forecast.Years)
	}
	switch c.Render.Mode {
	case "screen", "print":
	default:
		return fmt.Errorf("%w: invalid render mode: %s", common.ErrInvalidConfig, c.Render.Mode)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", common.ErrInvalidConfig)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("%w: server.read_timeout must be positive", common.ErrInvalidConfig)
	}
	return nil
}
