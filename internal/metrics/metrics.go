// Package metrics exposes the instance lifecycle as Prometheus collectors.
// A Collector is a component.Observer; it also counts componentInitialized
// events once subscribed to a bus.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/specialistvlad/componeer/internal/bus"
)

const namespace = "componeer"

// Collector tracks instance creation and destruction per component.
type Collector struct {
	registry    *prometheus.Registry
	created     *prometheus.CounterVec
	destroyed   *prometheus.CounterVec
	live        *prometheus.GaugeVec
	initialized *prometheus.CounterVec
}

// New creates a Collector registered on its own Prometheus registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_created_total",
			Help:      "Instances created, by component.",
		}, []string{"component"}),
		destroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_destroyed_total",
			Help:      "Instances destroyed, by component.",
		}, []string{"component"}),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "instances_live",
			Help:      "Instances currently alive, by component.",
		}, []string{"component"}),
		initialized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "components_initialized_total",
			Help:      "componentInitialized events, by component.",
		}, []string{"component"}),
	}
	c.registry.MustRegister(c.created, c.destroyed, c.live, c.initialized)
	return c
}

// InstanceCreated implements component.Observer.
func (c *Collector) InstanceCreated(component, _ string) {
	c.created.WithLabelValues(component).Inc()
	c.live.WithLabelValues(component).Inc()
}

// InstanceDestroyed implements component.Observer.
func (c *Collector) InstanceDestroyed(component, _ string) {
	c.destroyed.WithLabelValues(component).Inc()
	c.live.WithLabelValues(component).Dec()
}

// Subscribe counts componentInitialized events emitted on b.
func (c *Collector) Subscribe(b *bus.Bus) bus.Subscription {
	return b.On(bus.EventComponentInitialized, func(args ...any) {
		if len(args) == 0 {
			return
		}
		if name, ok := args[0].(string); ok {
			c.initialized.WithLabelValues(name).Inc()
		}
	})
}

// Registry returns the Prometheus registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
