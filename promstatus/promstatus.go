// Package promstatus exports domain statistics as Prometheus metrics.
//
// The collector reads Stats() at scrape time, so registering a domain costs
// nothing on the raise path:
//
//	xgx_status_incidents_raised_total{domain="posix",domain_id="1"} 12
//	xgx_status_incident_capacity{domain="posix",domain_id="1"} 16
package promstatus

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// Source is anything that reports domain statistics, typically an
// *xgxstatus.EnumDomain.
type Source interface {
	Stats() xgxstatus.DomainStats
}

var labels = []string{"domain", "domain_id"}

// Collector is a prometheus.Collector over a set of domains.
type Collector struct {
	mu       sync.RWMutex
	sources  []Source
	raised   *prometheus.Desc
	capacity *prometheus.Desc
}

// NewCollector returns a collector over sources. More can be added later with
// Add.
func NewCollector(sources ...Source) *Collector {
	return &Collector{
		sources: append([]Source(nil), sources...),
		raised: prometheus.NewDesc(
			"xgx_status_incidents_raised_total",
			"Total number of incidents recorded by the domain",
			labels, nil,
		),
		capacity: prometheus.NewDesc(
			"xgx_status_incident_capacity",
			"Number of incidents the domain retains before overwriting",
			labels, nil,
		),
	}
}

// Register builds a collector over sources and registers it with reg.
func Register(reg prometheus.Registerer, sources ...Source) (*Collector, error) {
	c := NewCollector(sources...)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Add starts exporting s. Safe to call while scrapes are in progress.
func (c *Collector) Add(s Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, s)
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.raised
	ch <- c.capacity
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	sources := c.sources
	c.mu.RUnlock()

	for _, s := range sources {
		st := s.Stats()
		lv := []string{st.Name, strconv.FormatUint(uint64(st.ID), 10)}
		ch <- prometheus.MustNewConstMetric(c.raised, prometheus.CounterValue, float64(st.Raised), lv...)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Capacity), lv...)
	}
}

var _ prometheus.Collector = (*Collector)(nil)
