// Package sigprom is a second concrete consumer of the plugin-hook
// subsystem (§6), exposing graph activity as Prometheus counters. It
// exercises github.com/prometheus/client_golang, a dependency carried by
// the vango-go-vango repository in this corpus, against the core engine's
// hook surface — the engine has no other notion of metrics.
package sigprom

import (
	"github.com/prometheus/client_golang/prometheus"

	sig "github.com/signified-go/signified"
)

// Collector counts node lifecycle events by kind ("signal" or "computed").
type Collector struct {
	Created *prometheus.CounterVec
	Reads   *prometheus.CounterVec
	Updates *prometheus.CounterVec

	unregister []func()
}

// NewCollector builds a Collector and registers its metrics against reg.
// Pass prometheus.DefaultRegisterer for the global registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sig",
			Name:      "nodes_created_total",
			Help:      "Number of Signal/Computed nodes created, by kind.",
		}, []string{"kind"}),
		Reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sig",
			Name:      "node_reads_total",
			Help:      "Number of node reads, by kind.",
		}, []string{"kind"}),
		Updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sig",
			Name:      "node_updates_total",
			Help:      "Number of node value changes actually propagated, by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(c.Created, c.Reads, c.Updates)

	c.unregister = []func(){
		sig.OnCreated(func(n sig.Node) { c.Created.WithLabelValues(n.Kind()).Inc() }),
		sig.OnRead(func(n sig.Node) { c.Reads.WithLabelValues(n.Kind()).Inc() }),
		sig.OnUpdated(func(n sig.Node) { c.Updates.WithLabelValues(n.Kind()).Inc() }),
	}

	return c
}

// Close unregisters the hooks. It does not unregister the metrics from the
// Prometheus registry.
func (c *Collector) Close() {
	for _, fn := range c.unregister {
		fn()
	}
	c.unregister = nil
}
