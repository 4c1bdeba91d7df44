package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers the two things worth watching in this service: whether the
// cache is doing its job and whether the upstream sources are healthy.
// All methods are safe on a nil receiver so tests can run without a registry.
type Metrics struct {
	CacheRequests *prometheus.CounterVec
	SourceFetches *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "syncsolved_cache_requests_total",
			Help: "Cache lookups by resource type and outcome (hit or miss)",
		}, []string{"resource", "outcome"}),
		SourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "syncsolved_source_fetch_total",
			Help: "Upstream source fetches by source name and outcome (ok or error)",
		}, []string{"source", "outcome"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "syncsolved_source_fetch_duration_seconds",
			Help:    "Duration of upstream source fetches",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"source"}),
	}
}

func (m *Metrics) CacheHit(resource string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(resource, "hit").Inc()
}

func (m *Metrics) CacheMiss(resource string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(resource, "miss").Inc()
}

func (m *Metrics) SourceFetch(source string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.SourceFetches.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) ObserveFetch(source string, start time.Time) {
	if m == nil {
		return
	}
	m.FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}
