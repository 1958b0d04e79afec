package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tenant_portal",
			Name:      "payment_attempts_total",
			Help:      "Charge attempts by outcome and method",
		},
		[]string{"outcome", "method"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tenant_portal",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by path and status",
			Buckets: []float64{
				0.005, 0.01, 0.025, 0.05, 0.1,
				0.25, 0.5, 1, 2.5, 5,
			},
		},
		[]string{"path", "status"},
	)
)

func init() {
	prometheus.MustRegister(PaymentAttemptsTotal, HTTPRequestDuration)
}

// IncPayment records one charge attempt.
func IncPayment(outcome, method string) {
	PaymentAttemptsTotal.WithLabelValues(outcome, method).Inc()
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(path, status string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(path, status).Observe(seconds)
}
