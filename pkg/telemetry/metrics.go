package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var Metrics = struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	QuestionsTotal  *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
}{
	RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weatherd",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by route and status code.",
	}, []string{"route", "status"}),

	RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "weatherd",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"}),

	QuestionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weatherd",
		Name:      "questions_total",
		Help:      "Weather questions answered, by outcome (answered/unknown_city/no_city).",
	}, []string{"outcome"}),

	ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weatherd",
		Name:      "errors_total",
		Help:      "Total errors by component.",
	}, []string{"component"}),
}
