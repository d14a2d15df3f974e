package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/componeer/internal/ctxlog"
	"github.com/specialistvlad/componeer/internal/dom"
	"github.com/specialistvlad/componeer/internal/watcher"
)

// Run checks the requires graph, mounts the components into the document
// and reports the instances. In watch mode it then remounts on every change
// to the document until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.registry.CheckRequires(); err != nil {
		return err
	}

	if err := a.mount(ctx); err != nil {
		return err
	}
	if err := a.report(); err != nil {
		return err
	}

	if a.cfg.Watch {
		if err := a.watch(ctx); err != nil {
			return err
		}
	}

	if a.cfg.ShowMetrics {
		if err := a.metrics.WriteText(a.outW); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// mount parses the document, points the registry at the context element and
// initializes the targets.
func (a *App) mount(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	doc, err := dom.Load(a.cfg.DocumentPath)
	if err != nil {
		return err
	}
	root, err := dom.ResolveContext(doc, a.cfg.ContextSelector, logger)
	if err != nil {
		return err
	}
	if err := a.registry.SetContext(root); err != nil {
		return err
	}
	a.document = doc

	targets := a.cfg.Targets
	if len(targets) == 0 {
		targets = a.roots()
	}
	if err := a.registry.Init(targets); err != nil {
		return fmt.Errorf("failed to initialize components: %w", err)
	}
	logger.Info("Components mounted.", "document", a.cfg.DocumentPath, "components", len(a.registry.Names()))
	return nil
}

// roots returns the components no other component requires. Initializing
// them reaches every component through its requirements.
func (a *App) roots() []string {
	required := make(map[string]bool)
	for _, name := range a.registry.Names() {
		def, _ := a.registry.Get(name)
		for _, req := range def.Requires() {
			if req != name {
				required[req] = true
			}
		}
	}

	var roots []string
	for _, name := range a.registry.Names() {
		if !required[name] {
			roots = append(roots, name)
		}
	}
	return roots
}

// remount destroys every instance and mounts the document again.
func (a *App) remount(ctx context.Context) error {
	if err := a.registry.DestroyAll(); err != nil {
		ctxlog.FromContext(ctx).Error("Failed to destroy some instances.", "error", err)
	}
	if err := a.mount(ctx); err != nil {
		return err
	}
	return a.report()
}

func (a *App) watch(ctx context.Context) error {
	ctx = ctxlog.With(ctx, "mode", "watch")
	logger := ctxlog.FromContext(ctx)

	cfg := watcher.DefaultConfig(a.cfg.DocumentPath)
	cfg.DebounceDur = a.cfg.Debounce
	cfg.Logger = logger
	w, err := watcher.New(cfg)
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Stop(); err != nil {
			logger.Warn("Failed to stop watcher.", "error", err)
		}
	}()

	logger.Info("Watching document for changes.", "path", a.cfg.DocumentPath)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped.")
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Info("Document changed, remounting.")
			if err := a.remount(ctx); err != nil {
				logger.Error("Remount failed.", "error", err)
			}
		}
	}
}
