package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Lab Metrics
// =============================================================================

var (
	// LabComputationsTotal counts lab computations by lab name
	LabComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irlab_lab_computations_total",
			Help: "Total number of lab computations served",
		},
		[]string{"lab"},
	)

	// LabErrorsTotal counts lab requests rejected or failed, by lab name
	LabErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irlab_lab_errors_total",
			Help: "Total number of failed lab computations",
		},
		[]string{"lab"},
	)

	// LabComputationDuration measures the time spent inside a lab computation
	LabComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "irlab_lab_computation_duration_seconds",
			Help:    "Latency of lab computations",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"lab"},
	)
)

// =============================================================================
// Journey Metrics
// =============================================================================

var (
	// NodesCompletedTotal counts learning nodes marked completed
	NodesCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irlab_journey_nodes_completed_total",
			Help: "Total number of learning nodes completed",
		},
		[]string{"unit"},
	)

	// ContentComingSoonTotal counts requests for content that is not written yet
	ContentComingSoonTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irlab_content_coming_soon_total",
			Help: "Total number of requests answered with coming soon",
		},
		[]string{"kind"},
	)
)

// =============================================================================
// HTTP Metrics
// =============================================================================

var (
	// HTTPRequestsTotal counts served requests by method and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irlab_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "code"},
	)

	// HTTPRequestDuration measures request latency by method
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "irlab_http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// ObserveLab records one computation of lab that started at start.
func ObserveLab(lab string, start time.Time, err error) {
	if err != nil {
		LabErrorsTotal.WithLabelValues(lab).Inc()
		return
	}
	LabComputationsTotal.WithLabelValues(lab).Inc()
	LabComputationDuration.WithLabelValues(lab).Observe(time.Since(start).Seconds())
}
