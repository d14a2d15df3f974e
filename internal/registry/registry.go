package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/componeer/internal/bus"
	"github.com/specialistvlad/componeer/internal/component"
)

// Registry holds the component definitions of one application, keyed by
// name in registration order, and the bus they share.
type Registry struct {
	bus       *bus.Bus
	context   any
	discovery component.Discovery
	logger    *slog.Logger
	observer  component.Observer

	names []string
	defs  map[string]*component.Definition
}

// Option configures a Registry.
type Option func(*Registry)

// WithBus makes the registry share b instead of creating its own bus.
func WithBus(b *bus.Bus) Option {
	return func(r *Registry) { r.bus = b }
}

// WithContext sets the root mount points are discovered under.
func WithContext(root any) Option {
	return func(r *Registry) { r.context = root }
}

// WithDiscovery sets the collaborator that finds mount points.
func WithDiscovery(d component.Discovery) Option {
	return func(r *Registry) { r.discovery = d }
}

// WithLogger sets the logger used by the registry and its definitions.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithObserver receives every instance creation and destruction.
func WithObserver(o component.Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		defs: make(map[string]*component.Definition),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.bus == nil {
		r.bus = bus.New()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// NewWithComponents creates a Registry and registers cfgs in order. The first
// invalid registration aborts construction.
func NewWithComponents(cfgs []component.Config, opts ...Option) (*Registry, error) {
	r := New(opts...)
	for _, cfg := range cfgs {
		if _, err := r.Register(cfg); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register builds a definition from cfg and stores it under its resolved name.
// Registering a name twice replaces the earlier definition; the name keeps its
// original position and the old definition's instances are left alone.
func (r *Registry) Register(cfg component.Config) (*component.Definition, error) {
	def, err := component.New(cfg, component.Env{
		Bus:       r.bus,
		Context:   r.context,
		Discovery: r.discovery,
		Logger:    r.logger,
		Observer:  r.observer,
	})
	if err != nil {
		return nil, err
	}

	name := def.Name()
	if _, exists := r.defs[name]; exists {
		r.logger.Debug("Component re-registered, last registration wins.", "component", name)
	} else {
		r.logger.Debug("Registering component.", "component", name, "selector", def.Selector())
		r.names = append(r.names, name)
	}
	r.defs[name] = def
	return def, nil
}

// Get returns the definition registered under name. A miss is logged.
func (r *Registry) Get(name string) (*component.Definition, bool) {
	def, ok := r.defs[name]
	if !ok {
		r.logger.Warn("Component not registered.", "component", name)
		return nil, false
	}
	return def, true
}

// Proxy returns a broadcast proxy over every live instance of name. An
// unknown name yields a proxy with no instances.
func (r *Registry) Proxy(name string) *component.InstanceProxy {
	def, _ := r.Get(name)
	return component.NewInstanceProxy(def)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

// Bus returns the shared event bus.
func (r *Registry) Bus() *bus.Bus { return r.bus }

// Context returns the root new definitions are bound to.
func (r *Registry) Context() any { return r.context }

// SetContext validates root and makes it the context of the registry and of
// every registered definition. Live instances are untouched.
func (r *Registry) SetContext(root any) error {
	if r.discovery == nil || !r.discovery.ValidContext(root) {
		return fmt.Errorf("%w: registry was given a %T", component.ErrContext, root)
	}
	for _, name := range r.names {
		if err := r.defs[name].SetContext(root); err != nil {
			return err
		}
	}
	r.context = root
	return nil
}

// On subscribes fn to event on the shared bus.
func (r *Registry) On(event string, fn bus.Listener) bus.Subscription {
	return r.bus.On(event, fn)
}

// Once subscribes fn to the next emission of event on the shared bus.
func (r *Registry) Once(event string, fn bus.Listener) bus.Subscription {
	return r.bus.Once(event, fn)
}

// Off removes subscriptions from the shared bus. Without handles every
// listener of event is removed.
func (r *Registry) Off(event string, subs ...bus.Subscription) {
	r.bus.Off(event, subs...)
}

// Emit publishes event on the shared bus.
func (r *Registry) Emit(event string, args ...any) {
	r.bus.Emit(event, args...)
}
