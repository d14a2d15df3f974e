package component

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componeer/internal/bus"
)

// fakeNode is a minimal mount tree: selectors are ".class" only.
type fakeNode struct {
	class    string
	children []*fakeNode
}

type fakeDiscovery struct{}

func (fakeDiscovery) FindAll(root any, selector string) ([]any, error) {
	if len(selector) < 2 || selector[0] != '.' {
		return nil, errors.New("unsupported selector " + selector)
	}
	var out []any
	var walk func(n *fakeNode)
	walk = func(n *fakeNode) {
		for _, c := range n.children {
			if c.class == selector[1:] {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root.(*fakeNode))
	return out, nil
}

func (fakeDiscovery) ValidContext(root any) bool {
	n, ok := root.(*fakeNode)
	return ok && n != nil
}

func (fakeDiscovery) ValidMountPoint(mp any) bool {
	n, ok := mp.(*fakeNode)
	return ok && n != nil
}

func tree(classes ...string) *fakeNode {
	root := &fakeNode{class: "root"}
	for _, c := range classes {
		root.children = append(root.children, &fakeNode{class: c})
	}
	return root
}

// widget records what its constructor was given.
type widget struct {
	mount     any
	options   any
	eventBus  *bus.Proxy
	value     int
	destroyed int
	failOn    error
}

func (w *widget) Destroy() error {
	w.destroyed++
	return w.failOn
}

func (w *widget) GetValue() int { return w.value }

// plain has no Destroy method.
type plain struct{}

type recorder struct {
	created   []string
	destroyed []string
}

func (r *recorder) InstanceCreated(component, id string) {
	r.created = append(r.created, component+"/"+id)
}

func (r *recorder) InstanceDestroyed(component, id string) {
	r.destroyed = append(r.destroyed, component+"/"+id)
}

func widgetCtor(built *[]*widget) Constructor {
	return func(p Params) (Instance, error) {
		w := &widget{mount: p.MountPoint, options: p.Options, eventBus: p.EventBus, value: len(*built) + 1}
		*built = append(*built, w)
		return w, nil
	}
}

func testEnv(t *testing.T, root any) (Env, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	return Env{
		Bus:       bus.New(),
		Context:   root,
		Discovery: fakeDiscovery{},
		Logger:    slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}, logs
}

func mustNew(t *testing.T, cfg Config, env Env) *Definition {
	t.Helper()
	d, err := New(cfg, env)
	require.NoError(t, err)
	return d
}

func sameKeys(t *testing.T, d *Definition) {
	t.Helper()
	ids := slices.Sorted(slices.Values(d.ids))
	require.Len(t, d.instances, len(ids))
	require.Len(t, d.proxies, len(ids))
	require.Len(t, d.mounts, len(ids))
	for _, id := range ids {
		require.Contains(t, d.instances, id)
		require.Contains(t, d.proxies, id)
		require.Contains(t, d.mounts, id)
	}
}
