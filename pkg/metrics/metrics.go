package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumecraft", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumecraft", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	EnhanceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumecraft", Name: "enhance_requests_total", Help: "Enhancement requests by outcome (remote, fallback, rejected)."},
		[]string{"outcome"},
	)
	ExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumecraft", Name: "exports_total", Help: "PDF export attempts by outcome (ok, blocked, failed)."},
		[]string{"outcome"},
	)
	ExportPages = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "resumecraft", Name: "export_pages", Help: "Page count of exported PDFs.", Buckets: []float64{1, 2, 3, 4, 6, 8}},
	)
	RenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "resumecraft", Name: "render_duration_seconds", Help: "Template render duration by template.", Buckets: prometheus.DefBuckets},
		[]string{"template"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(EnhanceRequests)
	reg.MustRegister(ExportsTotal)
	reg.MustRegister(ExportPages)
	reg.MustRegister(RenderDuration)
}
