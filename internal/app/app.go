package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/khrees2412/autodoc/internal/config"
	"github.com/khrees2412/autodoc/internal/generator"
	"github.com/khrees2412/autodoc/internal/logging"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/internal/tui"
)

// App is the dependency container for the CLI application
type App struct {
	Config     *config.Config
	HTTPClient *http.Client
	Logger     *logging.Logger
	Generator  *generator.Client
	Printer    *preview.Printer
}

// Option overrides loaded configuration for a single run
type Option func(*config.Config)

// WithServiceURL points the generator at url instead of the configured one
func WithServiceURL(url string) Option {
	return func(c *config.Config) {
		if url != "" {
			c.ServiceURL = url
		}
	}
}

// NewApp loads the configuration and wires the service client and printer
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := *config.AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		// logging is best effort; the UI owns the terminal
		logger = logging.Discard()
	}

	httpClient := &http.Client{
		Timeout: cfg.RequestTimeout,
	}

	a := &App{
		Config:     &cfg,
		HTTPClient: httpClient,
		Logger:     logger,
		Generator: generator.NewClient(cfg.ServiceURL,
			generator.WithHTTPClient(httpClient),
			generator.WithLogger(logger.Logger),
		),
		Printer: preview.NewPrinter(cfg.ChromePath, cfg.PrintTimeout, logger.Logger),
	}
	logger.Info("autodoc started", "service_url", cfg.ServiceURL, "config", config.GetConfigPath())
	return a, nil
}

// DefaultStyle returns the configured resume template
func (a *App) DefaultStyle() preview.Style {
	style, err := preview.ParseStyle(a.Config.DefaultStyle)
	if err != nil {
		return preview.StyleRelaxed
	}
	return style
}

// UIDeps returns the collaborators of the interactive UI
func (a *App) UIDeps() tui.Deps {
	return tui.Deps{
		Generator:    a.Generator,
		Printer:      a.Printer,
		Logger:       a.Logger.Logger,
		OutputDir:    a.Config.OutputDir,
		DefaultStyle: a.DefaultStyle(),
	}
}

// Close releases the log file
func (a *App) Close() error {
	if a.Logger != nil {
		return a.Logger.Close()
	}
	return nil
}
