// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wichananm65/user-registry/pkg/logger"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds environment-driven configuration.
type Config struct {
	HTTP     HTTPConfig
	Users    UsersConfig
	Logging  LoggingConfig
	Shutdown ShutdownConfig
}

type HTTPConfig struct {
	Host         string        `env:"USERS_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `env:"USERS_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"USERS_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"USERS_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type UsersConfig struct {
	MinimumAge int `env:"USERS_MINIMUM_AGE" env-default:"18" env-description:"minimum age in whole years for user creation"`
}

type LoggingConfig struct {
	Level string `env:"USERS_LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"USERS_LOGGER_MODE" env-default:"production"`
}

func (c LoggingConfig) Environment() logger.Environment {
	if c.Mode == string(logger.Development) {
		return logger.Development
	}
	return logger.Production
}

type ShutdownConfig struct {
	Timeout time.Duration `env:"USERS_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Load reads dotenvPath when it exists, then the environment. Variables already
// set in the environment win over the file.
func Load(ctx context.Context, dotenvPath string) (*Config, error) {
	log := logger.Log(ctx)

	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil {
			log.Debug(ctx, "no dotenv file loaded", zap.String("path", dotenvPath), zap.Error(err))
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info(ctx, "configuration loaded",
		zap.String("http_addr", cfg.HTTP.Addr()),
		zap.Int("minimum_age", cfg.Users.MinimumAge),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("shutdown_timeout", cfg.Shutdown.Timeout))
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Users.MinimumAge < 0 {
		errs = append(errs, fmt.Errorf("%w: USERS_MINIMUM_AGE must not be negative, got %d", ErrInvalidConfig, c.Users.MinimumAge))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: USERS_HTTP_PORT out of range: %d", ErrInvalidConfig, c.HTTP.Port))
	}
	if c.Shutdown.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: USERS_SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// Usage describes every supported variable.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
