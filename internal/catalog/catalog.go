// Package catalog holds the compiled-in parts manifests refer to by name:
// component constructors, `applies` predicates and `identification`
// generators. It resolves a loaded config.Model into component registrations.
package catalog

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/specialistvlad/componeer/internal/component"
	"github.com/specialistvlad/componeer/internal/config"
)

// Module is implemented by every compiled-in component package.
type Module interface {
	Register(c *Catalog)
}

// Predicate decides once, at registration, whether a component applies.
type Predicate func(*component.Definition) bool

// Catalog maps manifest names to Go code.
type Catalog struct {
	constructors map[string]component.Constructor
	predicates   map[string]Predicate
	identifiers  map[string]func() string
}

// New creates a catalog holding the built-in predicates and identifiers, then
// lets every module register into it.
func New(modules ...Module) *Catalog {
	c := &Catalog{
		constructors: make(map[string]component.Constructor),
		predicates:   make(map[string]Predicate),
		identifiers:  make(map[string]func() string),
	}

	c.RegisterPredicate("always", func(*component.Definition) bool { return true })
	c.RegisterPredicate("never", func(*component.Definition) bool { return false })
	c.RegisterPredicate("mounted", func(d *component.Definition) bool { return d.Selector() != "" })
	c.RegisterIdentifier("short", func() string {
		id, _, _ := strings.Cut(uuid.NewString(), "-")
		return id
	})

	for _, m := range modules {
		m.Register(c)
	}
	return c
}

// RegisterConstructor registers the constructor for a class name.
func (c *Catalog) RegisterConstructor(class string, ctor component.Constructor) {
	if _, exists := c.constructors[class]; exists {
		panic(fmt.Sprintf("constructor for class '%s' already registered", class))
	}
	slog.Debug("Registering component class.", "class", class)
	c.constructors[class] = ctor
}

// RegisterPredicate registers an `applies` predicate.
func (c *Catalog) RegisterPredicate(name string, p Predicate) {
	if _, exists := c.predicates[name]; exists {
		panic(fmt.Sprintf("predicate '%s' already registered", name))
	}
	c.predicates[name] = p
}

// RegisterIdentifier registers an `identification` generator.
func (c *Catalog) RegisterIdentifier(name string, fn func() string) {
	if _, exists := c.identifiers[name]; exists {
		panic(fmt.Sprintf("identifier '%s' already registered", name))
	}
	c.identifiers[name] = fn
}

// Constructor returns the constructor registered for class.
func (c *Catalog) Constructor(class string) (component.Constructor, bool) {
	ctor, ok := c.constructors[class]
	return ctor, ok
}

// Classes returns the registered class names, sorted.
func (c *Catalog) Classes() []string {
	return slices.Sorted(maps.Keys(c.constructors))
}

// Resolve turns one manifest entry into a registration. Unknown names are
// configuration errors.
func (c *Catalog) Resolve(entry *config.Component) (component.Config, error) {
	ctor, ok := c.constructors[entry.Class]
	if !ok {
		return component.Config{}, fmt.Errorf("%w: component %q in %s: unknown class %q", component.ErrConfig, entry.Key(), entry.Source, entry.Class)
	}

	cfg := component.Config{
		Name:        entry.Key(),
		Constructor: ctor,
		Selector:    entry.Selector,
		Requires:    slices.Clone(entry.Requires),
	}
	if entry.Options != nil {
		cfg.Options = entry.Options
	}

	if entry.Applies != "" {
		p, ok := c.predicates[entry.Applies]
		if !ok {
			return component.Config{}, fmt.Errorf("%w: component %q in %s: unknown applies predicate %q", component.ErrConfig, entry.Key(), entry.Source, entry.Applies)
		}
		cfg.Applies = p
	}

	if entry.Identification != "" {
		fn, ok := c.identifiers[entry.Identification]
		if !ok {
			return component.Config{}, fmt.Errorf("%w: component %q in %s: unknown identification %q", component.ErrConfig, entry.Key(), entry.Source, entry.Identification)
		}
		cfg.Identify = fn
	}

	return cfg, nil
}

// ResolveAll resolves every entry of m in order.
func (c *Catalog) ResolveAll(m *config.Model) ([]component.Config, error) {
	cfgs := make([]component.Config, 0, len(m.Components))
	for _, entry := range m.Components {
		cfg, err := c.Resolve(entry)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}
