// SPDX-License-Identifier: MIT
package approx

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Entry-point and outcome label values.
const (
	entryNew         = "new"
	entryFromDensity = "from_density"

	outcomeOK    = "ok"
	outcomeError = "error"
)

// Metrics holds the prometheus collectors fed by construction calls.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	constructions *prometheus.CounterVec
	correlations  *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		constructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qcluster_constructions_total",
				Help: "Approximate operator constructions by entry point and outcome",
			},
			[]string{"entry", "outcome"},
		),
		correlations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qcluster_correlations_extracted_total",
				Help: "Correlation operators extracted from density operators, by order",
			},
			[]string{"order"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qcluster_construction_duration_seconds",
				Help:    "Wall time of approximate operator constructions",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"entry"},
		),
	}
	for _, c := range []prometheus.Collector{m.constructions, m.correlations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one finished construction.
func (m *Metrics) observe(entry string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	m.constructions.WithLabelValues(entry, outcome).Inc()
	m.duration.WithLabelValues(entry).Observe(time.Since(start).Seconds())
}

// extracted records n correlation operators of the given order.
func (m *Metrics) extracted(order, n int) {
	if m == nil || n == 0 {
		return
	}
	m.correlations.WithLabelValues(strconv.Itoa(order)).Add(float64(n))
}
