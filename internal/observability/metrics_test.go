package observability

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePipeline_CuentaErroresYAlertas(t *testing.T) {
	m := NewMetrics()

	m.ObservePipeline("alerts", 20*time.Millisecond, 12, nil)
	m.ObservePipeline("alerts", 5*time.Millisecond, 0, errors.New("timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.pipelineErrors.WithLabelValues("alerts")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.pipelineAlerts))
}

func TestObservePipeline_NilNoFalla(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObservePipeline("summary", time.Second, 1, nil) })
}

func TestMiddleware_UsaElPatronDeRuta(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/companies/:company_id/alerts/low-stock", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/companies/abc/alerts/low-stock", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/companies/:company_id/alerts/low-stock", "GET", "200"))
	assert.Equal(t, 1.0, got)
}

func TestHandler_ExponeMetricas(t *testing.T) {
	m := NewMetrics()
	m.ObservePipeline("alerts", time.Millisecond, 3, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "stockalert_pipeline_duration_seconds")
}
