package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/componeer/internal/bus"
	"github.com/specialistvlad/componeer/internal/component"
)

var _ component.Observer = (*Collector)(nil)

func TestCollector_Lifecycle(t *testing.T) {
	c := New()
	c.InstanceCreated("ColorChanger", "a")
	c.InstanceCreated("ColorChanger", "b")
	c.InstanceCreated("AlertButton", "c")
	c.InstanceDestroyed("ColorChanger", "a")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.created.WithLabelValues("ColorChanger")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.destroyed.WithLabelValues("ColorChanger")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.live.WithLabelValues("ColorChanger")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.live.WithLabelValues("AlertButton")))
}

func TestCollector_Subscribe(t *testing.T) {
	c := New()
	b := bus.New()
	c.Subscribe(b)

	b.Emit(bus.EventComponentInitialized, "ColorChanger")
	b.Emit(bus.EventComponentInitialized, "ColorChanger")
	b.Emit(bus.EventComponentInitialized)
	b.Emit(bus.EventComponentInitialized, 42)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.initialized.WithLabelValues("ColorChanger")))
}

func TestCollector_WriteText(t *testing.T) {
	c := New()
	c.InstanceCreated("AlertButton", "x")

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	assert.Contains(t, buf.String(), `componeer_instances_live{component="AlertButton"} 1`)

	expected := `
# HELP componeer_instances_created_total Instances created, by component.
# TYPE componeer_instances_created_total counter
componeer_instances_created_total{component="AlertButton"} 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "componeer_instances_created_total"))
}
