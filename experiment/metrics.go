// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a private registry with the experiment collectors. It is
// exported as a node-exporter textfile rather than served.
type Metrics struct {
	registry *prometheus.Registry

	// SweepDuration observes the wall time of one timed sweep, by size.
	SweepDuration *prometheus.HistogramVec

	// Sweeps counts finished sweeps by stage (approx, exact, timing) and
	// outcome (ok, error).
	Sweeps *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.SweepDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dapfront_sweep_duration_seconds",
		Help:    "Wall time of one frontier sweep.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"size"})
	m.Sweeps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dapfront_sweeps_total",
		Help: "Finished frontier sweeps.",
	}, []string{"stage", "outcome"})
	m.registry.MustRegister(m.SweepDuration, m.Sweeps)

	return m
}

// WriteTextfile writes the current values in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("experiment: metrics: %w", err)
	}

	return nil
}

func (m *Metrics) done(stage string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Sweeps.WithLabelValues(stage, outcome).Inc()
}
