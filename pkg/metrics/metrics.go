// Package metrics expõe os contadores Prometheus da integração com o AppMetrica
// e da reconciliação de estatísticas.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	EndpointAcquisition = "acquisition"
	EndpointEvents      = "events"

	OutcomeSuccess = "success"
	OutcomeError   = "error"

	OutcomeNotFound = "not_found"
	OutcomeInternal = "internal"
)

var (
	AppMetricaRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "appmetrica_requests_total",
		Help: "Total requests sent to the AppMetrica APIs",
	}, []string{"endpoint", "outcome"})

	AppMetricaDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "appmetrica_degraded_total",
		Help: "Total fetches that degraded to zero values",
	}, []string{"endpoint", "reason"})

	Reconciliations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reconciliations_total",
		Help: "Total stats reconciliations by outcome",
	}, []string{"outcome"})

	ReconcileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reconcile_duration_seconds",
		Help:    "Time to reconcile the stats of a single referrer",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})
)

func RecordRequest(endpoint string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	AppMetricaRequests.WithLabelValues(endpoint, outcome).Inc()
}

func RecordDegraded(endpoint, reason string) {
	AppMetricaDegraded.WithLabelValues(endpoint, reason).Inc()
}

func RecordReconciliation(outcome string, elapsed time.Duration) {
	Reconciliations.WithLabelValues(outcome).Inc()
	ReconcileDuration.Observe(elapsed.Seconds())
}

// Handler retorna o handler do endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
