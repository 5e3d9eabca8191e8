// Package metrics provides catalog metrics for observability
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values for persistence operations.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// CatalogMetrics contains Prometheus metrics for catalog operations.
// All recording methods are safe to call on a nil receiver.
type CatalogMetrics struct {
	registry *prometheus.Registry

	commandsTotal       *prometheus.CounterVec
	recordsGauge        prometheus.Gauge
	persistenceTotal    *prometheus.CounterVec
	persistenceDuration *prometheus.HistogramVec
	historyDepthGauge   *prometheus.GaugeVec

	// collectors is a slice of all collectors for easier iteration
	collectors []prometheus.Collector
}

// New creates catalog metrics on a private registry
func New() (*CatalogMetrics, error) {
	return NewCatalogMetrics(prometheus.NewRegistry())
}

// NewCatalogMetrics creates and registers new catalog metrics
func NewCatalogMetrics(registry *prometheus.Registry) (*CatalogMetrics, error) {
	m := &CatalogMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CatalogMetrics) initMetrics() {
	m.commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artvault_commands_total",
			Help: "Total number of catalog commands by kind and history operation",
		},
		[]string{"kind", "op"}, // kind: add, remove, edit; op: submit, undo, redo
	)

	m.recordsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "artvault_records",
			Help: "Number of records currently in the catalog",
		},
	)

	m.persistenceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artvault_persistence_operations_total",
			Help: "Total number of catalog load and save operations",
		},
		[]string{"op", "backend", "status"},
	)

	m.persistenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artvault_persistence_duration_seconds",
			Help:    "Time taken to load or save the catalog",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
		},
		[]string{"op", "backend"},
	)

	m.historyDepthGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "artvault_history_depth",
			Help: "Number of commands on the undo and redo stacks",
		},
		[]string{"stack"},
	)

	m.collectors = []prometheus.Collector{
		m.commandsTotal,
		m.recordsGauge,
		m.persistenceTotal,
		m.persistenceDuration,
		m.historyDepthGauge,
	}
}

// Describe implements the Collector interface
func (m *CatalogMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, collector := range m.collectors {
		collector.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *CatalogMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, collector := range m.collectors {
		collector.Collect(ch)
	}
}

// RecordCommand counts a command passing through the history
func (m *CatalogMetrics) RecordCommand(kind, op string) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(kind, op).Inc()
}

// SetRecords sets the current catalog size
func (m *CatalogMetrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.recordsGauge.Set(float64(n))
}

// SetHistoryDepth sets the undo and redo stack depths
func (m *CatalogMetrics) SetHistoryDepth(undo, redo int) {
	if m == nil {
		return
	}
	m.historyDepthGauge.WithLabelValues("undo").Set(float64(undo))
	m.historyDepthGauge.WithLabelValues("redo").Set(float64(redo))
}

// RecordPersistence records a load or save and its duration in seconds
func (m *CatalogMetrics) RecordPersistence(op, backend string, err error, seconds float64) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.persistenceTotal.WithLabelValues(op, backend, status).Inc()
	m.persistenceDuration.WithLabelValues(op, backend).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format
func (m *CatalogMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
