package testutil

import (
	"sync"

	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/component"
)

// RecorderModule registers a component class whose instances record their
// lifecycle hooks, in order, on the module.
type RecorderModule struct {
	Class string

	mu     sync.Mutex
	events []string
}

// NewRecorderModule creates a recorder for class.
func NewRecorderModule(class string) *RecorderModule {
	return &RecorderModule{Class: class}
}

// Register implements the catalog.Module interface.
func (m *RecorderModule) Register(c *catalog.Catalog) {
	c.RegisterConstructor(m.Class, func(p component.Params) (component.Instance, error) {
		r := &recorded{module: m}
		r.Bind(p, r)
		return r, nil
	})
}

// Events returns the recorded hooks, e.g. "create", "init", "destroy".
func (m *RecorderModule) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.events...)
}

func (m *RecorderModule) record(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

type recorded struct {
	component.Base
	module *RecorderModule
}

func (r *recorded) OnCreate() { r.module.record("create") }

func (r *recorded) OnInit() { r.module.record("init") }

func (r *recorded) OnDestroy() error {
	r.module.record("destroy")
	return nil
}
