package testutil

import (
	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/component"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a single component class.
type SimpleModule struct {
	Class       string
	Constructor component.Constructor
}

// Register implements the catalog.Module interface.
func (m *SimpleModule) Register(c *catalog.Catalog) {
	c.RegisterConstructor(m.Class, m.Constructor)
}
