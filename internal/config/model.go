package config

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Model is the unified, format-agnostic representation of every loaded
// manifest.
type Model struct {
	Components []*Component
}

// Component is one `component` entry of a manifest.
type Component struct {
	// Name is the registry key. Empty means the class name.
	Name string
	// Class names a constructor registered in the catalog.
	Class string
	// Selector is empty for components without a mount point.
	Selector string
	Requires []string
	// Applies names a predicate registered in the catalog.
	Applies string
	// Identification names an id generator registered in the catalog.
	Identification string
	// Options holds plain Go values: string, bool, int, float64, []any and
	// map[string]any.
	Options map[string]any
	// Source is the file the entry was read from.
	Source string
}

// Key returns the name the component registers under.
func (c *Component) Key() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Class
}

// Merge appends other's components after m's.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Components = append(m.Components, other.Components...)
}

// Names returns the component keys in manifest order. A key declared twice
// is listed once, at its first position.
func (m *Model) Names() []string {
	var names []string
	for _, c := range m.Components {
		if !slices.Contains(names, c.Key()) {
			names = append(names, c.Key())
		}
	}
	return names
}

// Validate reports every entry without a class.
func (m *Model) Validate() error {
	var err error
	for i, c := range m.Components {
		if c.Class == "" {
			err = multierr.Append(err, fmt.Errorf("component #%d %q in %s has no class", i, c.Name, c.Source))
		}
	}
	return err
}
