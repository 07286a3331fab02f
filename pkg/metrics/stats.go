package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsMetrics times the dashboard statistics queries.
type StatsMetrics struct {
	duration *prometheus.HistogramVec
}

func NewStatsMetrics(reg prometheus.Registerer) *StatsMetrics {
	if reg == nil {
		return &StatsMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stats_query_duration_seconds",
		Help:    "Duration of dashboard statistics queries in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})
	reg.MustRegister(duration)
	return &StatsMetrics{duration: duration}
}

// ObserveQuery records the duration of the named statistics query.
func (s *StatsMetrics) ObserveQuery(query string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(query)).Observe(duration.Seconds())
}
