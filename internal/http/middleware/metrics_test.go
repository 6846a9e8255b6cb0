package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsApp(t *testing.T, cfg MetricsConfig) *fiber.App {
	t.Helper()
	cfg.Registry = prometheus.NewRegistry()
	app := fiber.New()
	app.Use(MetricsWithConfig(cfg))
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendString("test") })
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendString(c.Params("id")) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream") })
	app.Use(func(c *fiber.Ctx) error {
		MarkUnmatched(c)
		return c.SendStatus(fiber.StatusNotFound)
	})
	return app
}

func scrape(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestMetricsMiddleware(t *testing.T) {
	app := newMetricsApp(t, DefaultMetricsConfig)

	for _, path := range []string{"/test", "/items/1", "/items/2", "/boom", "/no/such/route"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
	}

	body := scrape(t, app)
	assert.Contains(t, body, `dealfinder_request_duration_seconds_count{code="200",method="GET",path="/test"} 1`)
	assert.Contains(t, body, `dealfinder_request_duration_seconds_count{code="200",method="GET",path="/items/:id"} 2`)
	assert.Contains(t, body, `dealfinder_request_duration_seconds_count{code="502",method="GET",path="/boom"} 1`)
	assert.Contains(t, body, `dealfinder_request_duration_seconds_count{code="404",method="GET",path="/not-found"} 1`)
	assert.False(t, strings.Contains(body, "/no/such/route"), "raw unmatched path must not be a label")
}

func TestMetricsNormalizedStatus(t *testing.T) {
	cfg := DefaultMetricsConfig
	cfg.NormalizeHTTPStatus = true
	app := newMetricsApp(t, cfg)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Contains(t, scrape(t, app), `code="2xx"`)
}

func TestNormalizeHTTPStatus(t *testing.T) {
	assert.Equal(t, "1xx", normalizeHTTPStatus(101))
	assert.Equal(t, "2xx", normalizeHTTPStatus(204))
	assert.Equal(t, "3xx", normalizeHTTPStatus(302))
	assert.Equal(t, "4xx", normalizeHTTPStatus(404))
	assert.Equal(t, "5xx", normalizeHTTPStatus(503))
}
