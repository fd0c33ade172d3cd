// Package metrics provides Prometheus metrics for the gig match engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the engine's Prometheus collectors.
type Manager struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	// Assessment pipeline
	assessmentsTotal   prometheus.Counter
	assessmentErrors   prometheus.Counter
	assessmentDuration prometheus.Histogram
	gigsScored         prometheus.Counter
	resultSize         prometheus.Gauge

	// Normalization quality
	recordsSkipped *prometheus.CounterVec

	// Store access
	storeQueryDuration prometheus.Histogram
	storeErrors        prometheus.Counter
}

// Global metrics manager on its own registry, so the default Go collectors
// stay out of the scrape output.
var (
	customRegistry = prometheus.NewRegistry()          //nolint:gochecknoglobals // singleton metrics registry
	globalManager  = NewManager(WithRegistry(customRegistry)) //nolint:gochecknoglobals // singleton metrics manager
)

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "tugela",
		subsystem: "gigmatch",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.register()
	return m
}

func (m *Manager) register() {
	factory := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help}
	}

	m.assessmentsTotal = prometheus.NewCounter(factory("assessments_total", "Total assessment requests processed."))
	m.assessmentErrors = prometheus.NewCounter(factory("assessment_errors_total", "Total assessment requests that failed."))
	m.gigsScored = prometheus.NewCounter(factory("gigs_scored_total", "Total gig rows scored."))
	m.storeErrors = prometheus.NewCounter(factory("store_errors_total", "Total record store failures."))

	m.recordsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "records_skipped_total",
		Help: "Raw records dropped during normalization, by record kind.",
	}, []string{"kind"})

	m.assessmentDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "assessment_duration_seconds",
		Help:    "End-to-end assessment pipeline duration.",
		Buckets: prometheus.DefBuckets,
	})
	m.storeQueryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "store_query_duration_seconds",
		Help:    "External record store query duration.",
		Buckets: prometheus.DefBuckets,
	})

	m.resultSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "last_result_size",
		Help: "Number of gigs in the most recent ranked result.",
	})

	m.registry.MustRegister(
		m.assessmentsTotal, m.assessmentErrors, m.gigsScored, m.storeErrors,
		m.recordsSkipped, m.assessmentDuration, m.storeQueryDuration, m.resultSize,
	)
}

// Handler returns an HTTP handler serving the manager's registry, for
// whatever outer layer wants to mount it.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package-level helpers against the global manager.

// RecordAssessment counts one completed assessment request.
func RecordAssessment() { globalManager.assessmentsTotal.Inc() }

// RecordAssessmentError counts one failed assessment request.
func RecordAssessmentError() { globalManager.assessmentErrors.Inc() }

// RecordStoreError counts one record store failure.
func RecordStoreError() { globalManager.storeErrors.Inc() }

// AddGigsScored counts gig rows scored in one request.
func AddGigsScored(n int) { globalManager.gigsScored.Add(float64(n)) }

// AddSkippedRecords counts raw records dropped during normalization.
func AddSkippedRecords(kind string, n int) {
	if n > 0 {
		globalManager.recordsSkipped.WithLabelValues(kind).Add(float64(n))
	}
}

// ObserveAssessmentDuration records one pipeline duration.
func ObserveAssessmentDuration(d time.Duration) {
	globalManager.assessmentDuration.Observe(d.Seconds())
}

// ObserveStoreQuery records one store query duration.
func ObserveStoreQuery(d time.Duration) {
	globalManager.storeQueryDuration.Observe(d.Seconds())
}

// SetResultSize records the size of the most recent ranked result.
func SetResultSize(n int) { globalManager.resultSize.Set(float64(n)) }

// Handler returns the global manager's scrape handler.
func Handler() http.Handler { return globalManager.Handler() }
