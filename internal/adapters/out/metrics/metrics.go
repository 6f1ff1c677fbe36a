// Package metrics exposes service counters to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Recorder owns the service's collectors and the registry they are exposed from.
// It implements ports.TransitionMetrics.
type Recorder struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	requests    *prometheus.CounterVec
	latencyMS   *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Order status transition requests by outcome.",
	}, []string{"from", "to", "role", "outcome"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(transitions, requests, latency)

	return &Recorder{
		registry:    registry,
		transitions: transitions,
		requests:    requests,
		latencyMS:   latency,
	}
}

// otherRole labels every role outside farmer and customer.
const otherRole = "other"

// ObserveTransition counts a transition request. Roles arrive from a request
// header, so anything but farmer and customer is counted as "other".
func (r *Recorder) ObserveTransition(from, to order.Status, role order.Role, outcome string) {
	r.transitions.WithLabelValues(from.String(), to.String(), roleLabel(role), outcome).Inc()
}

func roleLabel(role order.Role) string {
	if role.Validate() != nil {
		return otherRole
	}
	return role.String()
}

// Middleware counts requests per route template and response status.
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			r.requests.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
			r.latencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
