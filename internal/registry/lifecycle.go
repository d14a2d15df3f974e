package registry

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/specialistvlad/componeer/internal/bus"
	"github.com/specialistvlad/componeer/internal/component"
)

// InitComponent initializes the components name requires, then name itself,
// and emits componentInitialized with the name. It reports false when name is
// not registered. Unknown requirements are logged and skipped.
//
// Requirements are initialized every time a dependent is, and cycles are not
// detected here; see CheckRequires.
func (r *Registry) InitComponent(name string, root any) (bool, error) {
	def, ok := r.Get(name)
	if !ok {
		return false, nil
	}

	for _, req := range def.Requires() {
		if _, known := r.defs[req]; !known {
			r.logger.Warn("Required component not registered, skipping.", "component", name, "requires", req)
			continue
		}
		if _, err := r.InitComponent(req, root); err != nil {
			return false, err
		}
	}

	if err := def.Init(root); err != nil {
		return false, err
	}

	r.logger.Debug("Component initialized.", "component", name, "instances", def.Len())
	r.bus.Emit(bus.EventComponentInitialized, name)
	return true, nil
}

// Init initializes components against the stored context. target is nil for
// every component in registration order, a name, or a list of names; any
// other shape is a configuration error. The first failure stops the run.
func (r *Registry) Init(target any) error {
	var names []string
	switch t := target.(type) {
	case nil:
		names = slices.Clone(r.names)
	case string:
		names = []string{t}
	case []string:
		names = t
	default:
		return fmt.Errorf("%w: init target must be nil, a name or a list of names, got %T", component.ErrConfig, target)
	}

	for _, name := range names {
		if _, err := r.InitComponent(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// Destroy destroys the given instances of name, or all of them when no id is
// given. An unknown name is ignored.
func (r *Registry) Destroy(name string, ids ...string) error {
	def, ok := r.defs[name]
	if !ok {
		return nil
	}
	if len(ids) == 0 {
		return def.DestroyAllInstances()
	}

	var err error
	for _, id := range ids {
		multierr.AppendInto(&err, def.DestroyInstance(id))
	}
	return err
}

// DestroyAll destroys every instance of every component in registration
// order. Errors from individual instances are combined.
func (r *Registry) DestroyAll() error {
	var err error
	for _, name := range r.names {
		multierr.AppendInto(&err, r.defs[name].DestroyAllInstances())
	}
	return err
}

// Recreate replaces the given instances of name with fresh ones. Without ids
// every instance is destroyed and discovery runs again, so no old id
// survives.
func (r *Registry) Recreate(name string, ids ...string) error {
	def, ok := r.Get(name)
	if !ok {
		return nil
	}
	if len(ids) == 0 {
		return def.Reset()
	}

	var err error
	for _, id := range ids {
		_, rerr := def.Recreate(id)
		multierr.AppendInto(&err, rerr)
	}
	return err
}
