package prometheus

import (
	"net/http"
	"sales-service/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Status code category counter (2xx, 4xx, 5xx)
	HttpStatusCategoryTotal *prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// CRUD operations per entity
	EntityOperationsCounter *prometheus.CounterVec

	// Report queries per report and outcome
	ReportQueriesCounter *prometheus.CounterVec
)

// InitMetrics registers the service metrics on reg with the configured prefix
func InitMetrics(cfg *config.Config, reg prometheus.Registerer) {
	prefix := cfg.Metrics.Prefix
	factory := promauto.With(reg)

	HttpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpStatusCategoryTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"category"},
	)

	DbOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	EntityOperationsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of CRUD operations per entity",
		},
		[]string{"entity", "operation"},
	)

	ReportQueriesCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_report_queries_total",
			Help: "Total number of report queries by outcome",
		},
		[]string{"report", "outcome"},
	)
}

// GetPrometheusHandler returns an HTTP handler exposing the metrics of gatherer
func GetPrometheusHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordEntityOperation increments the counter for CRUD operations
func RecordEntityOperation(entity, operation string) {
	if EntityOperationsCounter == nil {
		return
	}
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordReportQuery increments the counter for report queries
func RecordReportQuery(report, outcome string) {
	if ReportQueriesCounter == nil {
		return
	}
	ReportQueriesCounter.WithLabelValues(report, outcome).Inc()
}

// statusCategory buckets an HTTP status code
func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}
