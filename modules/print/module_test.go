package print

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componeer/internal/catalog"
	"github.com/specialistvlad/componeer/internal/config"
	"github.com/specialistvlad/componeer/internal/dom"
	"github.com/specialistvlad/componeer/internal/registry"
	"github.com/specialistvlad/componeer/modules/alertbutton"
)

func TestPrinter(t *testing.T) {
	doc, err := dom.Parse(strings.NewReader(`<html><body><p class="log"></p></body></html>`))
	require.NoError(t, err)

	var out bytes.Buffer
	cat := catalog.New(&Module{Out: &out}, &alertbutton.Module{})
	cfgs, err := cat.ResolveAll(&config.Model{Components: []*config.Component{
		{Class: "Printer", Selector: ".log", Options: map[string]any{"b": 2, "a": "one"}},
		{Name: "Bare", Class: "Printer"},
		{Class: "AlertButton", Requires: []string{"Printer", "Bare"}, Options: map[string]any{"alertText": "hi"}},
	}})
	require.NoError(t, err)

	r, err := registry.NewWithComponents(cfgs, registry.WithContext(doc), registry.WithDiscovery(dom.Discovery{}))
	require.NoError(t, err)
	require.NoError(t, r.Init("AlertButton"))

	assert.Equal(t, strings.Join([]string{
		"html.body.p: a = one",
		"html.body.p: b = 2",
		"Printer: (no options)",
		`html.body.p: alert "hi"`,
		`Printer: alert "hi"`,
		"",
	}, "\n"), out.String())

	require.NoError(t, r.DestroyAll())
	assert.Zero(t, r.Bus().ListenerCount(alertbutton.EventAlert))
}
