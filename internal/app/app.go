package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/signalgraph/internal/builder"
	"github.com/vk/signalgraph/internal/config"
	"github.com/vk/signalgraph/internal/ctxlog"
	"github.com/vk/signalgraph/internal/typegraph"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	tg     *typegraph.TypeGraph
	model  *config.Model
}

// NewApp is the constructor for the main application. It loads every
// manifest through the given loader, registers the definitions and links
// their references. Failures at this stage are fatal startup errors and
// panic; the entrypoint recovers them into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfgModel, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	tg := typegraph.New()
	if err := builder.Apply(ctx, tg, cfgModel); err != nil {
		panic(fmt.Errorf("failed to register component definitions: %w", err))
	}
	logger.Debug("Component definitions registered.", "types", len(cfgModel.Components))

	return &App{
		outW:   outW,
		logger: logger,
		tg:     tg,
		model:  cfgModel,
	}
}

// TypeGraph returns the application's type graph. This is primarily for
// testing.
func (a *App) TypeGraph() *typegraph.TypeGraph {
	return a.tg
}
