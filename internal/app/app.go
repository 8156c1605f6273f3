package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Results are written to outW; log output goes to the writer the
// logger was built with.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	loaders []Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The given loaders
// determine which plan formats the app accepts.
func NewApp(outW, logW io.Writer, cfg *Config, loaders ...Loader) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		cfg:     cfg,
		loaders: loaders,
	}
}
