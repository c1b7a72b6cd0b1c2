package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "patient_registry_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ValidationFailures tracks field validation failures by field name
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_registry_validation_failures_total",
			Help: "Number of field validation failures",
		},
		[]string{"field"},
	)

	// DuplicateSearches tracks duplicate candidate searches by outcome
	DuplicateSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_registry_duplicate_searches_total",
			Help: "Number of duplicate candidate searches",
		},
		[]string{"outcome"},
	)

	// Registrations tracks registration submissions by status
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_registry_registrations_total",
			Help: "Number of registration submissions",
		},
		[]string{"operation", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_registry_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_registry_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "patient_registry_active_connections",
			Help: "Number of active connections",
		},
	)
)
