package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics métricas Prometheus del servicio sobre un registry propio.
type Metrics struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	pipelineDuration *prometheus.HistogramVec
	pipelineAlerts   *prometheus.HistogramVec
	pipelineErrors   *prometheus.CounterVec
}

// NewMetrics inicializa el registry con las métricas HTTP y las del motor de alertas.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stockalert_http_requests_total",
		Help: "Peticiones HTTP por ruta, método y código.",
	}, []string{"route", "method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stockalert_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP por ruta.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	pipelineDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stockalert_pipeline_duration_seconds",
		Help:    "Duración de cada ejecución del motor de alertas.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	pipelineAlerts := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stockalert_pipeline_alerts",
		Help:    "Alertas que califican por ejecución.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 7),
	}, []string{"operation"})
	pipelineErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stockalert_pipeline_errors_total",
		Help: "Ejecuciones del motor de alertas terminadas en error.",
	}, []string{"operation"})
	registry.MustRegister(
		requests, duration, pipelineDuration, pipelineAlerts, pipelineErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Metrics{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:    requests,
		requestDuration:  duration,
		pipelineDuration: pipelineDuration,
		pipelineAlerts:   pipelineAlerts,
		pipelineErrors:   pipelineErrors,
	}
}

// Handler devuelve el http.Handler para /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware registra conteo y duración de cada petición usando el patrón de la ruta,
// no la URL, para no disparar la cardinalidad con ids.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" {
			route = "unknown"
		}
		m.requestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObservePipeline implementa el observador del caso de uso de alertas.
func (m *Metrics) ObservePipeline(operation string, elapsed time.Duration, alerts int, err error) {
	if m == nil {
		return
	}
	m.pipelineDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		m.pipelineErrors.WithLabelValues(operation).Inc()
		return
	}
	m.pipelineAlerts.WithLabelValues(operation).Observe(float64(alerts))
}
