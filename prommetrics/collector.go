// Package prommetrics exports arraylist allocation accounting to Prometheus.
package prommetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/arraylist"
)

// Collector reads a Tracker snapshot on every scrape.
type Collector struct {
	tracker *arraylist.Tracker

	allocs    *prometheus.Desc
	frees     *prometheus.Desc
	live      *prometheus.Desc
	liveSlots *prometheus.Desc
}

// NewCollector returns a collector for t. Metric names are prefixed with
// namespace when it is non-empty.
func NewCollector(t *arraylist.Tracker, namespace string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "arraylist", n)
	}
	return &Collector{
		tracker:   t,
		allocs:    prometheus.NewDesc(name("allocations_total"), "Buffer allocations performed.", nil, nil),
		frees:     prometheus.NewDesc(name("frees_total"), "Buffer allocations freed.", nil, nil),
		live:      prometheus.NewDesc(name("live_allocations"), "Buffer allocations not yet freed.", nil, nil),
		liveSlots: prometheus.NewDesc(name("live_slots"), "Element slots held by live allocations.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocs
	ch <- c.frees
	ch <- c.live
	ch <- c.liveSlots
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.tracker.Metrics()
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(m.Allocations))
	ch <- prometheus.MustNewConstMetric(c.frees, prometheus.CounterValue, float64(m.Frees))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(m.Live))
	ch <- prometheus.MustNewConstMetric(c.liveSlots, prometheus.GaugeValue, float64(m.LiveSlots))
}
