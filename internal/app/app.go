package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/specialistvlad/dyegen/internal/config"
	"github.com/specialistvlad/dyegen/internal/ctxlog"
	"github.com/specialistvlad/dyegen/internal/hcl_adapter"
	"github.com/specialistvlad/dyegen/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	fs      billy.Filesystem
	loaders map[string]config.Loader
}

// Option customizes an App at construction time.
type Option func(*App)

// WithFilesystem replaces the output filesystem, which otherwise is the OS
// filesystem rooted at Config.OutputDir.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(a *App) { a.fs = fs }
}

// WithLoader registers a configuration loader for a file extension.
func WithLoader(ext string, loader config.Loader) Option {
	return func(a *App) { a.loaders[ext] = loader }
}

// NewApp is the constructor for the main application. It configures an
// isolated logger and loads the palette configuration.
func NewApp(outW io.Writer, appConfig *Config, opts ...Option) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		loaders: defaultLoaders(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.fs == nil {
		a.fs = osfs.New(appConfig.OutputDir)
	}

	model, err := a.loadModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.model = model
	logger.Debug("Configuration loaded and translated into unified model.", "namespace", model.Namespace, "colors", len(model.Colors))

	return a, nil
}

func defaultLoaders() map[string]config.Loader {
	loaders := map[string]config.Loader{
		hcl_adapter.Extension: hcl_adapter.NewLoader(),
	}
	yamlLoader := yaml_adapter.NewLoader()
	for _, ext := range yaml_adapter.Extensions {
		loaders[ext] = yamlLoader
	}
	return loaders
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
