package config

import (
	"errors"
	"fmt"
	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"io"
	"io/fs"
	"log/slog"
	"strings"
)

const (
	OutputPlain = "plain"
	OutputColor = "color"
	OutputJSON  = "json"
)

// Config is read from the environment, after an optional .env file.
type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	Output   string `env:"OUTPUT,default=plain" validate:"oneof=plain color json"`
}

var validate = validator.New()

// Load reads the given .env files, or .env when none is given, then the environment.
// Only a missing default .env is tolerated; a named file must exist and parse.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if len(filenames) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config loading failed: %w", err)
		}
	}
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config loading failed: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
