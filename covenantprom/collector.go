// Package covenantprom exports covenant registry statistics as Prometheus metrics.
package covenantprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sonirico/covenant"
)

const namespace = "covenant"

// Collector reads a registry's Stats on every scrape.
type Collector struct {
	registry *covenant.Registry

	events     *prometheus.Desc
	listeners  *prometheus.Desc
	minted     *prometheus.Desc
	signals    *prometheus.Desc
	deliveries *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a collector for r. Metrics carry a constant "registry" label set to r.ID(),
// so collectors of several registries can share a prometheus.Registerer.
func NewCollector(r *covenant.Registry) *Collector {
	labels := prometheus.Labels{"registry": r.ID()}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, labels)
	}

	return &Collector{
		registry:   r,
		events:     desc("events", "Number of event names with at least one listener."),
		listeners:  desc("listeners", "Number of registered listeners."),
		minted:     desc("listener_ids_minted_total", "Number of listener ids handed out."),
		signals:    desc("signals_total", "Number of signals that reached at least one listener."),
		deliveries: desc("deliveries_total", "Number of callback invocations."),
	}
}

// Describe sends the descriptors of every covenant metric.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.events
	ch <- c.listeners
	ch <- c.minted
	ch <- c.signals
	ch <- c.deliveries
}

// Collect sends the current values read from the registry's Stats.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.registry.Stats()

	ch <- prometheus.MustNewConstMetric(c.events, prometheus.GaugeValue, float64(s.Events))
	ch <- prometheus.MustNewConstMetric(c.listeners, prometheus.GaugeValue, float64(s.Listeners))
	ch <- prometheus.MustNewConstMetric(c.minted, prometheus.CounterValue, float64(s.IDsMinted))
	ch <- prometheus.MustNewConstMetric(c.signals, prometheus.CounterValue, float64(s.Signals))
	ch <- prometheus.MustNewConstMetric(c.deliveries, prometheus.CounterValue, float64(s.Deliveries))
}
