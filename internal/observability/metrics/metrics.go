package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics tracks inbound request counts and latency.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tikiti_http_requests_total",
			Help: "Total HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tikiti_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// GinMiddleware records request metrics after the handler chain runs.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Metrics exposes application-level instruments.
type Metrics struct {
	ordersPlaced     *prometheus.CounterVec
	ticketsIssued    prometheus.Counter
	settingsUpdates  prometheus.Counter
	estimateRequests prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ordersPlaced: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tikiti_orders_placed_total",
			Help: "Orders placed by payment method.",
		}, []string{"payment_method"}),
		ticketsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tikiti_tickets_issued_total",
			Help: "Tickets issued across all orders.",
		}),
		settingsUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tikiti_calculator_settings_updates_total",
			Help: "Successful calculator settings updates.",
		}),
		estimateRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tikiti_pricing_estimates_total",
			Help: "Pricing estimates computed.",
		}),
	}
}

func (m *Metrics) RecordOrderPlaced(paymentMethod string, tickets int) {
	if m == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(strings.TrimSpace(paymentMethod)).Inc()
	m.ticketsIssued.Add(float64(tickets))
}

func (m *Metrics) RecordSettingsUpdate() {
	if m == nil {
		return
	}
	m.settingsUpdates.Inc()
}

func (m *Metrics) RecordEstimate() {
	if m == nil {
		return
	}
	m.estimateRequests.Inc()
}
