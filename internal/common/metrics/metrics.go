// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitconv_conversions_completed_total",
			Help: "Total number of completed unit conversions",
		},
		[]string{"category"},
	)

	ConversionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitconv_conversions_failed_total",
			Help: "Total number of failed unit conversions",
		},
		[]string{"category", "error_code"},
	)

	InterpretRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unitconv_interpret_requests_total",
			Help: "Total number of natural-language interpretation requests",
		},
		[]string{"status"},
	)

	InterpretDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "unitconv_interpret_duration_seconds",
			Help: "Duration of interpretation requests in seconds",
		},
		[]string{"status"},
	)

	RequestsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "unitconv_requests_active",
			Help: "Number of in-flight requests per operation",
		},
		[]string{"operation"},
	)
)
