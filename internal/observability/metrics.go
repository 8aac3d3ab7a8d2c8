// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialecho_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "socialecho_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CascadeOutcomes counts community deletion cascades by terminal state.
	CascadeOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialecho_cascade_outcomes_total",
		Help: "Total community deletion cascades by terminal state",
	}, []string{"state"})

	// ModeratorMutations counts moderator assignment changes by operation and result.
	ModeratorMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialecho_moderator_mutations_total",
		Help: "Total moderator add/remove operations by result",
	}, []string{"operation", "result"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
