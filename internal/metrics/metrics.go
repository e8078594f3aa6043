// Package metrics exposes binder activity as Prometheus metrics.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-identityform/pkg/form"
)

// Collector counts binder mutations. It implements form.Observer.
type Collector struct {
	seeds    prometheus.Counter
	appends  *prometheus.CounterVec
	edits    *prometheus.CounterVec
	dirty    prometheus.Gauge
	items    prometheus.Gauge
	rejected *prometheus.CounterVec
}

var _ form.Observer = (*Collector)(nil)

// New creates a collector and registers it on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		seeds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "identity_editor_seeds_total",
			Help: "Number of times the editor state was seeded from a package.",
		}),
		appends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_editor_items_appended_total",
			Help: "Identities appended, by catalog id.",
		}, []string{"item_id"}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_editor_field_edits_total",
			Help: "Age range edits, by field.",
		}, []string{"field"}),
		dirty: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "identity_editor_dirty",
			Help: "1 when the editor holds unsaved changes.",
		}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "identity_editor_items",
			Help: "Number of identities currently selected.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_editor_rejected_total",
			Help: "Edits refused by the editor, by reason.",
		}, []string{"reason"}),
	}
	if reg != nil {
		for _, collector := range []prometheus.Collector{c.seeds, c.appends, c.edits, c.dirty, c.items, c.rejected} {
			if err := reg.Register(collector); err != nil {
				return nil, fmt.Errorf("metrics: register: %w", err)
			}
		}
	}
	return c, nil
}

// Observe records one binder event.
func (c *Collector) Observe(evt form.Event) {
	switch evt.Kind {
	case form.EventSeeded:
		c.seeds.Inc()
	case form.EventAppended:
		c.appends.WithLabelValues(evt.ItemID).Inc()
	case form.EventFieldSet:
		c.edits.WithLabelValues(string(evt.Field)).Inc()
	}
	if evt.Dirty {
		c.dirty.Set(1)
	} else {
		c.dirty.Set(0)
	}
	c.items.Set(float64(evt.Len))
}

// Rejected counts an edit refused with reason, e.g. "not_numeric".
func (c *Collector) Rejected(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}
