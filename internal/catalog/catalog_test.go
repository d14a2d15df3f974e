package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componeer/internal/bus"
	"github.com/specialistvlad/componeer/internal/component"
	"github.com/specialistvlad/componeer/internal/config"
)

type stub struct{}

type stubModule struct{}

func (stubModule) Register(c *Catalog) {
	c.RegisterConstructor("Stub", func(component.Params) (component.Instance, error) { return stub{}, nil })
}

func TestNew_RegistersModules(t *testing.T) {
	c := New(stubModule{})
	_, ok := c.Constructor("Stub")
	assert.True(t, ok)
	assert.Equal(t, []string{"Stub"}, c.Classes())
}

func TestRegister_DuplicatePanics(t *testing.T) {
	c := New(stubModule{})
	assert.Panics(t, func() { stubModule{}.Register(c) })
	assert.Panics(t, func() { c.RegisterPredicate("always", nil) })
	assert.Panics(t, func() { c.RegisterIdentifier("short", nil) })
}

func TestResolve(t *testing.T) {
	c := New(stubModule{})

	t.Run("full entry", func(t *testing.T) {
		cfg, err := c.Resolve(&config.Component{
			Name:           "Banner",
			Class:          "Stub",
			Selector:       ".banner",
			Requires:       []string{"Theme"},
			Applies:        "mounted",
			Identification: "short",
			Options:        map[string]any{"k": 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "Banner", cfg.Name)
		assert.Equal(t, ".banner", cfg.Selector)
		assert.Equal(t, []string{"Theme"}, cfg.Requires)
		assert.Equal(t, map[string]any{"k": 1}, cfg.Options)
		require.NotNil(t, cfg.Constructor)
		require.NotNil(t, cfg.Identify)
		assert.Len(t, cfg.Identify(), 8)

		// The predicate is exercised through a real definition.
		def, err := component.New(cfg, component.Env{Bus: bus.New(), Discovery: noDiscovery{}})
		require.NoError(t, err)
		assert.True(t, def.Applies())
	})

	t.Run("name defaults to class", func(t *testing.T) {
		cfg, err := c.Resolve(&config.Component{Class: "Stub", Applies: "never"})
		require.NoError(t, err)
		assert.Equal(t, "Stub", cfg.Name)
		assert.Nil(t, cfg.Options)

		def, err := component.New(cfg, component.Env{Bus: bus.New()})
		require.NoError(t, err)
		assert.False(t, def.Applies())
	})

	t.Run("unknown names", func(t *testing.T) {
		for _, entry := range []*config.Component{
			{Class: "Ghost"},
			{Class: "Stub", Applies: "sometimes"},
			{Class: "Stub", Identification: "serial"},
		} {
			_, err := c.Resolve(entry)
			assert.ErrorIs(t, err, component.ErrConfig)
		}
	})
}

func TestResolveAll(t *testing.T) {
	c := New(stubModule{})
	cfgs, err := c.ResolveAll(&config.Model{Components: []*config.Component{
		{Name: "A", Class: "Stub"},
		{Name: "B", Class: "Stub"},
	}})
	require.NoError(t, err)
	require.Len(t, cfgs, 2)
	assert.Equal(t, "A", cfgs[0].Name)
	assert.Equal(t, "B", cfgs[1].Name)

	_, err = c.ResolveAll(&config.Model{Components: []*config.Component{{Name: "X", Class: "Ghost"}}})
	assert.ErrorIs(t, err, component.ErrConfig)
}

type noDiscovery struct{}

func (noDiscovery) FindAll(any, string) ([]any, error) { return nil, nil }
func (noDiscovery) ValidContext(any) bool              { return true }
func (noDiscovery) ValidMountPoint(any) bool           { return true }
