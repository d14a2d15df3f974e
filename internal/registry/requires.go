package registry

import (
	"fmt"

	"github.com/specialistvlad/componeer/internal/component"
	"github.com/specialistvlad/componeer/internal/dag"
)

// graph builds the requires graph of the registered components. An edge
// from A to B means B requires A. Requirements naming unregistered
// components are logged and left out, as are self-requirements, which
// checkSelfRequires reports instead.
func (r *Registry) graph() *dag.Graph {
	g := dag.New()
	for _, name := range r.names {
		g.AddNode(name)
	}
	for _, name := range r.names {
		for _, req := range r.defs[name].Requires() {
			if !g.Has(req) {
				r.logger.Warn("Required component not registered, skipping.", "component", name, "requires", req)
				continue
			}
			if req == name {
				continue
			}
			// Both nodes exist and differ, so AddEdge cannot fail.
			_ = g.AddEdge(req, name)
		}
	}
	return g
}

// CheckRequires reports a configuration error when the requires relation
// contains a cycle, which InitComponent would otherwise recurse on forever.
func (r *Registry) CheckRequires() error {
	if err := r.checkSelfRequires(); err != nil {
		return err
	}
	if err := r.graph().DetectCycles(); err != nil {
		return fmt.Errorf("%w: requires: %w", component.ErrConfig, err)
	}
	return nil
}

func (r *Registry) checkSelfRequires() error {
	for _, name := range r.names {
		for _, req := range r.defs[name].Requires() {
			if req == name {
				return fmt.Errorf("%w: requires: component %q requires itself", component.ErrConfig, name)
			}
		}
	}
	return nil
}

// Order returns the given components and everything they require, with
// requirements first. No names means every registered component.
func (r *Registry) Order(names ...string) ([]string, error) {
	if err := r.checkSelfRequires(); err != nil {
		return nil, err
	}
	order, err := r.graph().Order(names...)
	if err != nil {
		return nil, fmt.Errorf("%w: requires: %w", component.ErrConfig, err)
	}
	return order, nil
}
