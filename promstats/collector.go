// Package promstats exports static list pool statistics as Prometheus metrics.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/linear"
)

// MetricsSource is anything that can snapshot its pool statistics.
// Both *linear.StaticList and *linear.SafeStaticList satisfy it.
type MetricsSource interface {
	Metrics() linear.PoolMetrics
}

// Collector implements prometheus.Collector for a set of named pools.
// Each scrape takes a fresh snapshot; nothing is cached between scrapes.
//
// Sources must be safe to call from the scraping goroutine, which in
// practice means registering SafeStaticList values.
type Collector struct {
	names   []string
	sources []MetricsSource

	capacity    *prometheus.Desc
	inUse       *prometheus.Desc
	free        *prometheus.Desc
	allocations *prometheus.Desc
	releases    *prometheus.Desc
	exhausted   *prometheus.Desc
}

// NewCollector creates a Collector with metric names under namespace
// (for example "linear" gives linear_pool_capacity).
func NewCollector(namespace string) *Collector {
	label := []string{"pool"}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", name), help, label, nil)
	}
	return &Collector{
		capacity:    desc("capacity", "Fixed number of slots in the pool."),
		inUse:       desc("in_use", "Slots currently holding list elements."),
		free:        desc("free", "Slots currently on the free chain."),
		allocations: desc("allocations_total", "Slots handed out since construction."),
		releases:    desc("releases_total", "Slots returned since construction."),
		exhausted:   desc("exhausted_total", "Insertions rejected because the pool was full."),
	}
}

// Add registers src under the pool label name. Add must not be called
// concurrently with a scrape.
func (c *Collector) Add(name string, src MetricsSource) {
	c.names = append(c.names, name)
	c.sources = append(c.sources, src)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.inUse
	ch <- c.free
	ch <- c.allocations
	ch <- c.releases
	ch <- c.exhausted
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for i, src := range c.sources {
		name := c.names[i]
		m := src.Metrics()
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.InUse), name)
		ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(m.Free), name)
		ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(m.Allocations), name)
		ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(m.Releases), name)
		ch <- prometheus.MustNewConstMetric(c.exhausted, prometheus.CounterValue, float64(m.Exhausted), name)
	}
}
