package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	UserLookups   prometheus.Counter
	WritesTotal   *prometheus.CounterVec
	ExportsTotal  *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	ErrorsCount   *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "The total number of collection queries served",
		}, []string{"collection"}),
		UserLookups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_lookups_total",
			Help:      "The total number of point lookups issued while joining users",
		}),
		WritesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writes_total",
			Help:      "The total number of create/update/delete operations",
		}, []string{"collection", "action"}),
		ExportsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "The total number of export artifacts produced",
		}, []string{"format"}),
		QueryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Time taken to build a view from the document store",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
