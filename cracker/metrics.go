package cracker

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "prowler_cracker"

// Collector is a prometheus.Collector that collects metrics about
// crack attempts.
type Collector struct {
	candidates prometheus.Counter
	cracks     *prometheus.CounterVec
}

// NewMetricsCollector returns a new Collector.
func NewMetricsCollector() *Collector {
	return &Collector{
		candidates: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "candidates_total",
				Help:      "The number of candidate strings hashed.",
			},
		),
		cracks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cracks_total",
				Help:      "The number of completed crack attempts by outcome.",
			}, []string{"outcome"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.candidates.Describe(ch)
	c.cracks.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.candidates.Collect(ch)
	c.cracks.Collect(ch)
}

func (c *Collector) observeCrack(attempts int64, found bool) {
	if c == nil {
		return
	}
	c.candidates.Add(float64(attempts))
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	c.cracks.WithLabelValues(outcome).Inc()
}
