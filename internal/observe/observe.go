package observe

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "autoop"

// Observer tracks the usage of the classifier and the metrics.
var Observer = NewMetrics()

func init() {
	prometheus.MustRegister(Observer.Evaluations, Observer.Features)
}

// Metrics holds the prometheus collectors.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Features    *prometheus.CounterVec
}

// NewMetrics creates new unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations",
				Help:      "number of metric evaluations",
			}, []string{"metric", "status"}),
		Features: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "features",
				Help:      "number of detected features",
			}, []string{"type"}),
	}
}

// Evaluated tracks an evaluation of the given metric.
func (m *Metrics) Evaluated(metric string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Evaluations.WithLabelValues(metric, status).Inc()
}

// Detected tracks a detected feature of the given type.
func (m *Metrics) Detected(featureType string) {
	m.Features.WithLabelValues(featureType).Inc()
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
