package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/slnkit/internal/config"
	"github.com/vk/slnkit/internal/ctxlog"
)

// App encapsulates the tool's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	opts   *config.Options
}

// NewApp is the constructor for the application. It loads the optional tool
// config file and builds an isolated logger; document output goes to outW,
// logs to logW. A failure to load the config file is a fatal startup error
// and panics; the CLI entrypoint recovers it into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	opts := config.Default()
	if appConfig.ConfigPath != "" {
		loaded, err := config.Load(context.Background(), appConfig.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		opts = loaded
	}

	// CLI flags win over config-file values.
	level := appConfig.LogLevel
	if level == "" {
		level = opts.LogLevel
	}
	format := appConfig.LogFormat
	if format == "" {
		format = opts.LogFormat
	}
	logger := newLogger(level, format, logW)
	logger.Debug("Logger configured successfully.", "level", level, "format", format)

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		opts:   opts,
	}
}

// Options returns the effective tool options. This is primarily for testing.
func (a *App) Options() *config.Options {
	return a.opts
}

// withLogger returns ctx with the app's logger attached.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
