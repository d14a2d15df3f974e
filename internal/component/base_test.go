package component

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hooked struct {
	Base
	trace *[]string
	fail  error
}

func (h *hooked) OnCreate() { *h.trace = append(*h.trace, "create") }
func (h *hooked) OnInit()   { *h.trace = append(*h.trace, "init") }
func (h *hooked) OnDestroy() error {
	*h.trace = append(*h.trace, "destroy")
	return h.fail
}

type bare struct{ Base }

func TestBase_LifecycleHooks(t *testing.T) {
	env, _ := testEnv(t, tree("x", "x"))
	var trace []string
	var built []*hooked
	d := mustNew(t, Config{Name: "Hooked", Selector: ".x", Options: "opts", Constructor: func(p Params) (Instance, error) {
		h := &hooked{trace: &trace}
		h.Bind(p, h)
		built = append(built, h)
		return h, nil
	}}, env)

	require.NoError(t, d.Init(nil))
	assert.Equal(t, []string{"create", "init", "create", "init"}, trace)
	assert.Equal(t, "opts", built[0].Options)
	assert.NotNil(t, built[0].MountPoint)

	for _, id := range d.IDs() {
		p, _ := d.Proxy(id)
		assert.Zero(t, p.Len(), "one-shot init listener should be gone after announcement")
	}

	trace = nil
	require.NoError(t, d.DestroyAllInstances())
	assert.Equal(t, []string{"destroy", "destroy"}, trace)
}

func TestBase_DestroyErrorPropagates(t *testing.T) {
	env, _ := testEnv(t, nil)
	boom := errors.New("boom")
	var trace []string
	d := mustNew(t, Config{Name: "Hooked", Constructor: func(p Params) (Instance, error) {
		h := &hooked{trace: &trace, fail: boom}
		h.Bind(p, h)
		return h, nil
	}}, env)
	require.NoError(t, d.Init(nil))

	require.ErrorIs(t, d.DestroyAllInstances(), boom)
}

func TestBase_WithoutHooks(t *testing.T) {
	env, _ := testEnv(t, nil)
	d := mustNew(t, Config{Name: "Bare", Constructor: func(p Params) (Instance, error) {
		b := &bare{}
		b.Bind(p, b)
		return b, nil
	}}, env)

	require.NoError(t, d.Init(nil))
	require.NoError(t, d.DestroyAllInstances())
}
