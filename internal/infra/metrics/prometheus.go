// Package metrics exposes Prometheus counters for the session flow.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns every collector the service exports.
type Registry struct {
	registry *prometheus.Registry

	loginAttempts   *prometheus.CounterVec
	refreshAttempts *prometheus.CounterVec
	tokensIssued    prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRegistry creates an isolated registry with the auth counters and runtime collectors.
func NewRegistry(cfg *config.Config) *Registry {
	namespace := "vidtube"
	if cfg != nil && cfg.Env.ServiceName != "" {
		namespace = metricName(cfg.Env.ServiceName)
	}

	r := &Registry{
		registry: prometheus.NewRegistry(),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		refreshAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "refresh_attempts_total",
			Help:      "Token refresh attempts by outcome.",
		}, []string{"outcome"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "token_pairs_issued_total",
			Help:      "Token pairs minted by login or refresh.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		r.loginAttempts,
		r.refreshAttempts,
		r.tokensIssued,
		r.httpRequests,
		r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by the matched route template.
// It must wrap the middleware that renders errors so the final status is observed.
func (r *Registry) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		status := c.Response().Status
		var (
			httpErr *echo.HTTPError
			appErr  domainerrors.AppError
		)
		switch {
		case err == nil:
		case errors.As(err, &appErr):
			status = appErr.HTTPCode()
		case errors.As(err, &httpErr):
			status = httpErr.Code
		default:
			status = http.StatusInternalServerError
		}

		method := c.Request().Method
		r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// metricName maps s onto the Prometheus name alphabet.
func metricName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

// AuthMetrics adapts the registry to the domain recorder interface.
func (r *Registry) AuthMetrics() service.AuthMetrics {
	return authMetrics{r}
}

type authMetrics struct {
	r *Registry
}

func (m authMetrics) LoginAttempt(outcome string) {
	m.r.loginAttempts.WithLabelValues(outcome).Inc()
}

func (m authMetrics) RefreshAttempt(outcome string) {
	m.r.refreshAttempts.WithLabelValues(outcome).Inc()
}

func (m authMetrics) TokensIssued() {
	m.r.tokensIssued.Inc()
}

type noopMetrics struct{}

// NewNoopAuthMetrics returns a recorder that discards everything.
func NewNoopAuthMetrics() service.AuthMetrics {
	return noopMetrics{}
}

func (noopMetrics) LoginAttempt(string) {}

func (noopMetrics) RefreshAttempt(string) {}

func (noopMetrics) TokensIssued() {}
