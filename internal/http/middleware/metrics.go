package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	httpRequestsDuration = "request_duration_seconds"
	notFoundPath         = "/not-found"
	unmatchedKey         = "metrics.unmatched"
)

type MetricsConfig struct {
	Next                func(c *fiber.Ctx) bool
	Namespace           string
	Subsystem           string
	Buckets             []float64
	NormalizeHTTPStatus bool
	MetricsPath         string
	// Registry defaults to the prometheus default registry.
	Registry *prometheus.Registry
}

var DefaultMetricsConfig = MetricsConfig{
	Namespace: "dealfinder",
	Buckets: []float64{
		0.0005,
		0.001, // 1ms
		0.005,
		0.01, // 10ms
		0.05,
		0.1, // 100ms
		0.5,
		1.0, // 1s
		5.0,
	},
	MetricsPath: "/metrics",
}

func normalizeHTTPStatus(status int) string {
	switch {
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	}
	return "5xx"
}

// MarkUnmatched tags a request served by the catch-all handler so its raw
// path does not become a label value.
func MarkUnmatched(c *fiber.Ctx) {
	c.Locals(unmatchedKey, true)
}

// MetricsWithConfig observes request latency per code, method and route,
// and serves the exposition format on config.MetricsPath.
func MetricsWithConfig(config MetricsConfig) fiber.Handler {
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if config.Registry != nil {
		registerer, gatherer = config.Registry, config.Registry
	}

	httpMetrics, err := registerHTTPMetrics(registerer, config)
	if err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		httpMetrics = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	var promHandler fiber.Handler
	if config.MetricsPath != "" {
		promHandler = adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return func(c *fiber.Ctx) error {
		if promHandler != nil && c.Path() == config.MetricsPath {
			return promHandler(c)
		}
		if config.Next != nil && config.Next(c) {
			return c.Next()
		}

		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		path := c.Route().Path
		if unmatched, _ := c.Locals(unmatchedKey).(bool); unmatched {
			path = notFoundPath
		}
		code := c.Response().StatusCode()
		status := strconv.Itoa(code)
		if config.NormalizeHTTPStatus {
			status = normalizeHTTPStatus(code)
		}
		httpMetrics.WithLabelValues(status, c.Method(), path).Observe(time.Since(start).Seconds())
		return nil
	}
}

func registerHTTPMetrics(r prometheus.Registerer, config MetricsConfig) (*prometheus.HistogramVec, error) {
	httpMetrics := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Subsystem: config.Subsystem,
		Name:      httpRequestsDuration,
		Help:      "Time spent serving a route",
		Buckets:   config.Buckets,
	}, []string{"code", "method", "path"})
	return httpMetrics, r.Register(httpMetrics)
}
