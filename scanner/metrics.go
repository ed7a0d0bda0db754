package scanner

import (
	"time"

	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"

	"prowler/netutil"
)

const metricsNamespace = "prowler_scanner"

// Collector is a prometheus.Collector that collects metrics about
// port scans.
type Collector struct {
	probes        *prometheus.CounterVec
	probeDuration prometheus.Histogram
	scans         *prometheus.CounterVec
}

// NewMetricsCollector returns a new Collector.
func NewMetricsCollector() *Collector {
	return &Collector{
		probes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "probes_total",
				Help:      "The number of TCP connect probes by resulting state.",
			}, []string{"state"},
		),
		probeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "probe_duration_seconds",
				Help:      "The time taken by a TCP connect probe.",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5},
			},
		),
		scans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "scans_total",
				Help:      "The number of scans by outcome.",
			}, []string{"outcome"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.probes.Describe(ch)
	c.probeDuration.Describe(ch)
	c.scans.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.probes.Collect(ch)
	c.probeDuration.Collect(ch)
	c.scans.Collect(ch)
}

func (c *Collector) observeProbe(state string, rtt time.Duration) {
	if c == nil {
		return
	}
	c.probes.WithLabelValues(state).Inc()
	c.probeDuration.Observe(rtt.Seconds())
}

func (c *Collector) observeScan(err error) {
	if c == nil {
		return
	}
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, netutil.ErrInvalidIPAddress):
		outcome = "invalid_ip"
	case errors.Is(err, netutil.ErrInvalidHostname):
		outcome = "invalid_hostname"
	default:
		outcome = "failed"
	}
	c.scans.WithLabelValues(outcome).Inc()
}
