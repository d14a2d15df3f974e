package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/config"
	"github.com/specialistvlad/componeer/internal/ctxlog"
	"github.com/specialistvlad/componeer/internal/dom"
	"github.com/specialistvlad/componeer/internal/metrics"
	"github.com/specialistvlad/componeer/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	cfg      *Config
	logger   *slog.Logger
	catalog  *catalog.Catalog
	model    *config.Model
	metrics  *metrics.Collector
	registry *registry.Registry
	document *html.Node
}

// NewApp is the constructor for the main application. It loads every
// manifest under cfg.ManifestPath with loaders, resolves the entries against
// the catalog built from modules and registers them. Nil loaders means
// DefaultLoaders; no modules means the core modules.
func NewApp(outW io.Writer, cfg *Config, loaders []config.Loader, modules ...catalog.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if loaders == nil {
		loaders = DefaultLoaders()
	}
	model := &config.Model{}
	for _, l := range loaders {
		m, err := l.Load(ctx, cfg.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifests: %w", err)
		}
		model.Merge(m)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifests: %w", err)
	}
	if len(model.Components) == 0 {
		logger.Warn("No components found in manifests.", "path", cfg.ManifestPath)
	}
	logger.Debug("Manifests loaded into unified model.", "components", len(model.Components))

	if len(modules) == 0 {
		modules = coreModules
	}
	cat := catalog.New(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "classes", cat.Classes())

	cfgs, err := cat.ResolveAll(model)
	if err != nil {
		return nil, err
	}

	collector := metrics.New()
	reg, err := registry.NewWithComponents(cfgs,
		registry.WithDiscovery(dom.Discovery{}),
		registry.WithLogger(logger),
		registry.WithObserver(collector),
	)
	if err != nil {
		return nil, err
	}
	collector.Subscribe(reg.Bus())
	logger.Debug("Registry populated.", "components", reg.Names())

	return &App{
		outW:     outW,
		cfg:      cfg,
		logger:   logger,
		catalog:  cat,
		model:    model,
		metrics:  collector,
		registry: reg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Metrics returns the collector observing the registry.
func (a *App) Metrics() *metrics.Collector {
	return a.metrics
}

// Document returns the currently mounted document, nil before Run.
func (a *App) Document() *html.Node {
	return a.document
}
