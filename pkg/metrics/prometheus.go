// Package metrics provides Prometheus metrics for the internmatch service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the matching service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics
	matchScores       prometheus.Counter
	recommendations   prometheus.Counter
	semanticRanks     prometheus.Counter
	filterSearches    prometheus.Counter
	scoringLatency    prometheus.Histogram
	rankingLatency    prometheus.Histogram
	embeddingLatency  prometheus.Histogram

	// Degradation and error metrics
	notFoundDegradations prometheus.Counter
	scoringErrors        prometheus.Counter
	embeddingErrors      prometheus.Counter
	errorsByComponent    *prometheus.CounterVec

	// Scale indicators
	corpusSize   prometheus.Gauge
	profileCount prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// customRegistry keeps service metrics separate from the default registry.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // paired with globalManager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "internmatch",
		subsystem:        "matching",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchScores = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_scores_total",
		Help:      "Total number of candidate/internship match scores computed",
	})

	m.recommendations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_batches_total",
		Help:      "Total number of top-recommendation batches served",
	})

	m.semanticRanks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "semantic_ranks_total",
		Help:      "Total number of embedding-based ranking requests served",
	})

	m.filterSearches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filter_searches_total",
		Help:      "Total number of filter searches served",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Histogram of rule-based scoring latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rankingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_latency_milliseconds",
		Help:      "Histogram of embedding-based ranking latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.embeddingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "embedding_latency_milliseconds",
		Help:      "Histogram of embedding backend latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.notFoundDegradations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "not_found_degradations_total",
		Help:      "Total number of scores degraded to zero because an entity could not be resolved",
	})

	m.scoringErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total number of scoring failures",
	})

	m.embeddingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "embedding_errors_total",
		Help:      "Total number of embedding backend failures",
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total errors grouped by component and error type",
		},
		[]string{"component", "error_type"},
	)

	m.corpusSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "corpus_size",
		Help:      "Number of active internship listings in the catalog",
	})

	m.profileCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profile_count",
		Help:      "Number of candidate profiles known to the profile store",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordMatchScore increments the computed match scores counter.
func RecordMatchScore() {
	globalManager.matchScores.Inc()
}

// RecordRecommendationBatch increments the recommendation batches counter.
func RecordRecommendationBatch() {
	globalManager.recommendations.Inc()
}

// RecordSemanticRank increments the semantic ranking requests counter.
func RecordSemanticRank() {
	globalManager.semanticRanks.Inc()
}

// RecordFilterSearch increments the filter searches counter.
func RecordFilterSearch() {
	globalManager.filterSearches.Inc()
}

// RecordScoringLatency records rule-based scoring latency in milliseconds.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordRankingLatency records embedding-based ranking latency in milliseconds.
func RecordRankingLatency(latencyMs float64) {
	globalManager.rankingLatency.Observe(latencyMs)
}

// RecordEmbeddingLatency records embedding backend latency in milliseconds.
func RecordEmbeddingLatency(latencyMs float64) {
	globalManager.embeddingLatency.Observe(latencyMs)
}

// RecordNotFoundDegradation increments the zero-score degradation counter.
func RecordNotFoundDegradation() {
	globalManager.notFoundDegradations.Inc()
}

// RecordScoringError increments the scoring errors counter.
func RecordScoringError() {
	globalManager.scoringErrors.Inc()
}

// RecordEmbeddingError increments the embedding errors counter.
func RecordEmbeddingError() {
	globalManager.embeddingErrors.Inc()
}

// RecordErrorByComponent increments error count for a specific component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateCorpusSize updates the active listing count gauge.
func UpdateCorpusSize(size int) {
	globalManager.corpusSize.Set(float64(size))
}

// UpdateProfileCount updates the candidate profile count gauge.
func UpdateProfileCount(count int) {
	globalManager.profileCount.Set(float64(count))
}

// RecordHTTPRequest records basic HTTP request metrics.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage updates system memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
