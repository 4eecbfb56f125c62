// Package metrics registers the Prometheus collectors instrumenting parse
// operations across the module.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	ParsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holoscript_parses_total",
		Help: "Total number of Parse calls.",
	})

	ParseDiagnostics = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "holoscript_parse_diagnostics",
		Help:    "Number of diagnostics produced per Parse call.",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
	})
)

// Register installs the collectors into the default Prometheus registry.
// Safe to call more than once; registration happens exactly once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ParsesTotal, ParseDiagnostics)
	})
}
