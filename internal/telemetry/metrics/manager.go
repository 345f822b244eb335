package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterRoutinesGenerated   prometheus.Counter
	CounterGenerationFailures  *prometheus.CounterVec
	CounterSetsLogged          prometheus.Counter
	CounterSessionsFinished    prometheus.Counter
	CounterFinishRejected      prometheus.Counter
	CounterCatalogCache        *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("gymplan", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymplan", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterOpts := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}
	}

	return &Manager{
		CounterRequests: factory.NewCounterVec(
			counterOpts("request", "The total number of incoming requests"),
			[]string{"method", "status"},
		),
		CounterHandleRequestPanic: factory.NewCounter(
			counterOpts("handle_request_panic", "The total number of serve request panics"),
		),
		CounterRateLimitedRequests: factory.NewCounter(
			counterOpts("rate_limited_requests", "The total number of rate limited requests"),
		),
		CounterRoutinesGenerated: factory.NewCounter(
			counterOpts("routines_generated", "The total number of generated routines"),
		),
		CounterGenerationFailures: factory.NewCounterVec(
			counterOpts("generation_failures", "Day or assignment writes that failed during generation"),
			[]string{"kind"},
		),
		CounterSetsLogged: factory.NewCounter(
			counterOpts("sets_logged", "The total number of logged sets"),
		),
		CounterSessionsFinished: factory.NewCounter(
			counterOpts("sessions_finished", "The total number of finished workout sessions"),
		),
		CounterFinishRejected: factory.NewCounter(
			counterOpts("sessions_finish_rejected", "Finish attempts rejected for too little progress"),
		),
		CounterCatalogCache: factory.NewCounterVec(
			counterOpts("catalog_cache", "Catalog cache lookups"),
			[]string{"result"},
		),
		GaugeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "current_requests",
			Help:      "Current number of requests served",
		}),
		GaugeLifeSignal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "life_signal",
			Help:      "Shows whether the service is alive",
		}),
		HistogramRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of response time for requests in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status_code"}),
	}
}

func (m *Manager) CatalogCacheHit() {
	if m == nil {
		return
	}
	m.CounterCatalogCache.WithLabelValues("hit").Inc()
}

func (m *Manager) CatalogCacheMiss() {
	if m == nil {
		return
	}
	m.CounterCatalogCache.WithLabelValues("miss").Inc()
}

func (m *Manager) RoutineGenerated() {
	if m == nil {
		return
	}
	m.CounterRoutinesGenerated.Inc()
}

// GenerationFailure counts a failed generation unit, kind is one of day, assignment, config.
func (m *Manager) GenerationFailure(kind string) {
	if m == nil {
		return
	}
	m.CounterGenerationFailures.WithLabelValues(kind).Inc()
}

func (m *Manager) SetLogged() {
	if m == nil {
		return
	}
	m.CounterSetsLogged.Inc()
}

func (m *Manager) SessionFinished() {
	if m == nil {
		return
	}
	m.CounterSessionsFinished.Inc()
}

func (m *Manager) FinishRejected() {
	if m == nil {
		return
	}
	m.CounterFinishRejected.Inc()
}
