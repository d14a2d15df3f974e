package component

import (
	"fmt"
	"log/slog"
	"slices"

	"go.uber.org/multierr"

	"github.com/specialistvlad/componeer/internal/bus"
)

// Definition is one registered component type and the instances created from
// it. Every instance is paired with its own bus.Proxy and the mount point it
// was created for; the three maps always share the same key set once a
// Make or DestroyInstance call returns.
//
// A Definition is driven from a single goroutine.
type Definition struct {
	name     string
	ctor     Constructor
	selector string
	options  any
	identify func() string
	requires []string
	applies  bool

	bus       *bus.Bus
	context   any
	discovery Discovery
	logger    *slog.Logger
	observer  Observer

	ids       []string
	instances map[string]Instance
	proxies   map[string]*bus.Proxy
	mounts    map[string]any
}

// New validates cfg and builds a Definition bound to env. The Applies
// predicate, if any, is evaluated here exactly once.
func New(cfg Config, env Env) (*Definition, error) {
	if cfg.Constructor == nil {
		return nil, fmt.Errorf("%w: component %q is missing a constructor", ErrConfig, cfg.Name)
	}
	if env.Bus == nil {
		return nil, fmt.Errorf("%w: component %q has no event bus", ErrConfig, cfg.Name)
	}

	name := cfg.Name
	if name == "" {
		name = nameOf(cfg.Constructor)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: cannot derive a name from the constructor, set one explicitly", ErrConfig)
	}

	if cfg.Selector != "" && env.Discovery == nil {
		return nil, fmt.Errorf("%w: component %q has selector %q but no discovery is configured", ErrConfig, name, cfg.Selector)
	}

	logger := env.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Definition{
		name:      name,
		ctor:      cfg.Constructor,
		selector:  cfg.Selector,
		options:   cfg.Options,
		identify:  cfg.Identify,
		requires:  slices.Clone(cfg.Requires),
		applies:   true,
		bus:       env.Bus,
		context:   env.Context,
		discovery: env.Discovery,
		logger:    logger,
		observer:  env.Observer,
		instances: make(map[string]Instance),
		proxies:   make(map[string]*bus.Proxy),
		mounts:    make(map[string]any),
	}

	if cfg.Applies != nil {
		d.applies = cfg.Applies(d)
		logger.Debug("Evaluated applies predicate.", "component", name, "applies", d.applies)
	}

	return d, nil
}

// Init creates instances. Without a selector it creates the single mount-less
// instance; with one it creates an instance per mount point found under the
// context. A non-nil root replaces the stored context after validation.
//
// Init appends: instances from earlier calls are kept.
func (d *Definition) Init(root any) error {
	if !d.applies {
		d.logger.Debug("Component does not apply, skipping init.", "component", d.name)
		return nil
	}

	if d.selector == "" {
		id, err := d.Make(nil)
		if err != nil {
			return err
		}
		d.announce(id)
		return nil
	}

	if root != nil {
		if !d.discovery.ValidContext(root) {
			return fmt.Errorf("%w: component %q was given a %T", ErrContext, d.name, root)
		}
		d.context = root
	}
	if !d.discovery.ValidContext(d.context) {
		return fmt.Errorf("%w: component %q has no usable context", ErrContext, d.name)
	}

	mounts, err := d.discovery.FindAll(d.context, d.selector)
	if err != nil {
		return fmt.Errorf("%w: component %q: %w", ErrConfig, d.name, err)
	}
	d.logger.Debug("Discovered mount points.", "component", d.name, "selector", d.selector, "count", len(mounts))

	for _, mp := range mounts {
		id, err := d.Make(mp)
		if err != nil {
			return err
		}
		d.announce(id)
	}
	return nil
}

// Make builds one instance for mp (nil for mount-less components) and returns
// its id. A failing constructor leaves no instance and no bus listener behind.
func (d *Definition) Make(mp any) (string, error) {
	if mp != nil && (d.discovery == nil || !d.discovery.ValidMountPoint(mp)) {
		return "", fmt.Errorf("%w: component %q was given a %T as mount point", ErrInstantiation, d.name, mp)
	}
	if d.ctor == nil {
		return "", fmt.Errorf("%w: component %q has no constructor", ErrInstantiation, d.name)
	}

	proxy := bus.NewProxy(d.bus, d.name)
	inst, err := d.ctor(Params{
		MountPoint: mp,
		Options:    d.options,
		EventBus:   proxy,
	})
	if err != nil {
		proxy.Cleanup()
		return "", fmt.Errorf("component %q: constructor failed: %w", d.name, err)
	}

	id := d.nextID()
	d.ids = append(d.ids, id)
	d.instances[id] = inst
	d.proxies[id] = proxy
	d.mounts[id] = mp

	d.logger.Debug("Instance created.", "component", d.name, "instance", id)
	if d.observer != nil {
		d.observer.InstanceCreated(d.name, id)
	}
	return id, nil
}

// announce emits instance:init through the instance's own proxy.
func (d *Definition) announce(id string) {
	proxy := d.proxies[id]
	if d.selector == "" {
		proxy.Emit(bus.EventInstanceInit, d.options)
		return
	}
	proxy.Emit(bus.EventInstanceInit, d.mounts[id], d.options)
}

// DestroyInstance destroys the instance with the given id and removes every
// listener its proxy registered. An unknown id is logged and ignored. The
// error, if any, comes from the instance's own Destroy and is returned after
// all bookkeeping is done.
func (d *Definition) DestroyInstance(id string) error {
	inst, found := d.instances[id]

	var err error
	if found {
		if destroyer, ok := inst.(Destroyer); ok {
			if derr := destroyer.Destroy(); derr != nil {
				err = fmt.Errorf("component %q: destroying instance %q: %w", d.name, id, derr)
			}
		}
	}

	if proxy, ok := d.proxies[id]; ok {
		proxy.Cleanup()
		delete(d.proxies, id)
	}
	delete(d.instances, id)
	delete(d.mounts, id)
	if i := slices.Index(d.ids, id); i >= 0 {
		d.ids = slices.Delete(d.ids, i, i+1)
	}

	if !found {
		d.logger.Warn("No instance found with ID.", "component", d.name, "instance", id)
		return nil
	}

	d.logger.Debug("Instance destroyed.", "component", d.name, "instance", id)
	if d.observer != nil {
		d.observer.InstanceDestroyed(d.name, id)
	}
	return err
}

// DestroyAllInstances destroys every current instance in creation order.
func (d *Definition) DestroyAllInstances() error {
	var err error
	for _, id := range slices.Clone(d.ids) {
		multierr.AppendInto(&err, d.DestroyInstance(id))
	}
	return err
}

// Recreate replaces one instance with a fresh one at the same mount point and
// returns the new id. A failing Destroy does not prevent the replacement; its
// error is returned along with the new id. An unknown id is logged and ignored.
func (d *Definition) Recreate(id string) (string, error) {
	if _, ok := d.instances[id]; !ok {
		d.logger.Warn("No instance found with ID.", "component", d.name, "instance", id)
		return "", nil
	}

	mp := d.mounts[id]
	destroyErr := d.DestroyInstance(id)

	newID, err := d.Make(mp)
	if err != nil {
		return "", multierr.Append(destroyErr, err)
	}
	d.announce(newID)
	return newID, destroyErr
}

// Reset destroys all instances and runs discovery again against the stored
// context. No id from before the call survives it.
func (d *Definition) Reset() error {
	err := d.DestroyAllInstances()

	d.ids = nil
	clear(d.instances)
	clear(d.proxies)
	clear(d.mounts)

	return multierr.Append(err, d.Init(nil))
}

// SetContext replaces the context future discoveries run against. It has no
// effect on live instances.
func (d *Definition) SetContext(root any) error {
	if d.selector != "" && !d.discovery.ValidContext(root) {
		return fmt.Errorf("%w: component %q was given a %T", ErrContext, d.name, root)
	}
	d.context = root
	return nil
}

// Name returns the registry key of the definition.
func (d *Definition) Name() string { return d.name }

// Selector returns the mount point selector, empty for singletons.
func (d *Definition) Selector() string { return d.selector }

// Options returns the option blob handed to every instance.
func (d *Definition) Options() any { return d.options }

// Requires returns the names that must be initialized first.
func (d *Definition) Requires() []string { return slices.Clone(d.requires) }

// Applies returns the cached result of the Applies predicate.
func (d *Definition) Applies() bool { return d.applies }

// Context returns the context the last discovery ran against.
func (d *Definition) Context() any { return d.context }

// Len returns the number of live instances.
func (d *Definition) Len() int { return len(d.ids) }

// IDs returns the live instance ids in creation order.
func (d *Definition) IDs() []string { return slices.Clone(d.ids) }

// Instance returns the instance with the given id.
func (d *Definition) Instance(id string) (Instance, bool) {
	inst, ok := d.instances[id]
	return inst, ok
}

// Proxy returns the bus proxy paired with the instance id.
func (d *Definition) Proxy(id string) (*bus.Proxy, bool) {
	p, ok := d.proxies[id]
	return p, ok
}

// MountPoint returns the mount point the instance was created for.
func (d *Definition) MountPoint(id string) (any, bool) {
	mp, ok := d.mounts[id]
	return mp, ok
}
