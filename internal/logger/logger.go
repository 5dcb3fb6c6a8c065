// Package logger builds the zerolog logger shared by the server and its middleware.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config selects the logger's level, output format and static fields.
type Config struct {
	Level          string `validate:"oneof=debug info warn error"`
	Env            string `validate:"oneof=dev staging prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string
	// Out defaults to os.Stdout in staging/prod and os.Stderr in dev.
	Out io.Writer `validate:"-"`
}

// New validates cfg and returns a logger. In dev the output is a
// human-readable console writer with caller info; elsewhere it is one JSON
// object per line.
func New(cfg Config) (zerolog.Logger, error) {
	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Out
	if cfg.Env == "dev" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	ctx := zerolog.New(out).Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("env", cfg.Env)
	if cfg.ServiceVersion != "" {
		ctx = ctx.Str("version", cfg.ServiceVersion)
	}
	if cfg.Env == "dev" {
		ctx = ctx.Caller()
	}
	return ctx.Logger(), nil
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.ServiceName == "" {
		c.ServiceName = "canteen-api"
	}
	if c.Out == nil {
		if c.Env == "dev" {
			c.Out = os.Stderr
		} else {
			c.Out = os.Stdout
		}
	}
}
