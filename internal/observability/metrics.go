package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// ScansTotal counts completed scans by evaluator domain and resulting risk level.
var ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "risk_engine_scans_total",
	Help: "Number of completed risk scans by domain and risk level.",
}, []string{"domain", "risk_level"})

// AIFallbacksTotal counts chat scans that fell back to the heuristic engine
// because the AI detection service was unavailable.
var AIFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "risk_engine_ai_fallbacks_total",
	Help: "Number of chat scans served by the heuristic fallback.",
})

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	handler := promhttp.Handler()

	return provider, handler, nil
}
