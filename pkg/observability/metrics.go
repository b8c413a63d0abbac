/*
Package observability exposes render-pass metrics through lifecycle
hooks. Wire it into the engine with espalier.WithHooks(metrics.Hooks())
and serve the registry with promhttp.
*/
package observability

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects render-pass metrics for Prometheus.
type Metrics struct {
	passDuration    *prometheus.HistogramVec
	passBytes       *prometheus.HistogramVec
	producerCalls   *prometheus.CounterVec
	producerErrors  *prometheus.CounterVec
	fragmentLookups *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		passDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "espalier_pass_duration_seconds",
				Help: "Duration of render passes from start to serialized output",
			},
			[]string{"page"},
		),
		passBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "espalier_pass_output_bytes",
				Help:    "Size of serialized documents",
				Buckets: prometheus.ExponentialBuckets(256, 4, 8),
			},
			[]string{"page"},
		),
		producerCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_producer_calls_total",
				Help: "Producer invocations during exposure resolution",
			},
			[]string{"name", "origin"},
		),
		producerErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_producer_errors_total",
				Help: "Producer invocations that returned an error",
			},
			[]string{"name", "origin"},
		),
		fragmentLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "espalier_fragment_lookups_total",
				Help: "Fragment cache lookups by result",
			},
			[]string{"result"},
		),
	}

	collectors := []prometheus.Collector{
		m.passDuration, m.passBytes, m.producerCalls, m.producerErrors, m.fragmentLookups,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns the lifecycle hooks feeding the collectors. Combine
// with other hooks via domain.MergeHooks.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnProducerCall: func(_ context.Context, e *domain.ProducerEvent) {
			m.producerCalls.WithLabelValues(e.Name, e.Origin).Inc()
			if e.IsError {
				m.producerErrors.WithLabelValues(e.Name, e.Origin).Inc()
			}
		},
		OnSerialize: func(_ context.Context, e *domain.SerializeEvent) {
			m.passDuration.WithLabelValues(e.Page).Observe(e.Duration.Seconds())
			m.passBytes.WithLabelValues(e.Page).Observe(float64(e.Bytes))
		},
		OnFragment: func(_ context.Context, e *domain.FragmentEvent) {
			result := "miss"
			if e.Hit {
				result = "hit"
			}
			m.fragmentLookups.WithLabelValues(result).Inc()
		},
	}
}
