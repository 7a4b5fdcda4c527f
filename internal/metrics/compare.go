package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Comparison pipeline Prometheus metrics.
var (
	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docmatch",
			Name:      "comparisons_total",
			Help:      "Total number of document comparisons",
		},
		[]string{"status"},
	)

	ComparisonDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docmatch",
			Name:      "comparison_duration_seconds",
			Help:      "Document comparison duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SimilarityScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docmatch",
			Name:      "similarity",
			Help:      "Distribution of job description / resume similarity scores",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	DocumentTokens = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docmatch",
			Name:      "document_tokens",
			Help:      "Normalized token count per document",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 10),
		},
		[]string{"kind"}, // "job_description" / "resume"
	)

	ResultCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docmatch",
			Name:      "result_cache_total",
			Help:      "Comparison result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	ExtractTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docmatch",
			Name:      "extract_total",
			Help:      "Document text extractions by format and outcome",
		},
		[]string{"format", "status"},
	)
)

var registerComparisonOnce sync.Once

// RegisterComparisonMetrics registers the comparison metrics with reg. Safe to call more than once.
func RegisterComparisonMetrics(reg prometheus.Registerer) {
	registerComparisonOnce.Do(func() {
		reg.MustRegister(
			ComparisonsTotal,
			ComparisonDuration,
			SimilarityScore,
			DocumentTokens,
			ResultCacheTotal,
			ExtractTotal,
		)
	})
}
