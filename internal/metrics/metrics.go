// Package metrics collects marketplace Prometheus metrics and exposes the
// scrape handler.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reusehub"

// Collector records service and HTTP metrics.
type Collector struct {
	uploads      *prometheus.CounterVec
	uploadBytes  prometheus.Histogram
	itemChanges  *prometheus.CounterVec
	ordersPlaced prometheus.Counter
	transitions  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_uploads_total",
			Help:      "Image uploads by outcome (stored, rejected, failed).",
		}, []string{"outcome"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "image_upload_bytes",
			Help:      "Size of stored images.",
			Buckets:   prometheus.ExponentialBuckets(16<<10, 2, 10),
		}),
		itemChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_changes_total",
			Help:      "Listing writes by operation.",
		}, []string{"op"}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders placed.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order status transitions.",
		}, []string{"from", "to"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.uploads,
		c.uploadBytes,
		c.itemChanges,
		c.ordersPlaced,
		c.transitions,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// UploadObserved records an upload attempt.
func (c *Collector) UploadObserved(outcome string, size int64) {
	c.uploads.WithLabelValues(outcome).Inc()
	if outcome == "stored" {
		c.uploadBytes.Observe(float64(size))
	}
}

// ItemChanged records a listing write.
func (c *Collector) ItemChanged(op string) {
	c.itemChanges.WithLabelValues(op).Inc()
}

// OrderPlaced records a new order.
func (c *Collector) OrderPlaced() {
	c.ordersPlaced.Inc()
}

// OrderTransitioned records an order status change.
func (c *Collector) OrderTransitioned(from, to string) {
	c.transitions.WithLabelValues(from, to).Inc()
}

// ObserveHTTP records a served request. route is the matched pattern, not
// the raw path.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Discard drops every observation. Used by tools and tests.
type Discard struct{}

func (Discard) UploadObserved(string, int64)                   {}
func (Discard) ItemChanged(string)                             {}
func (Discard) OrderPlaced()                                   {}
func (Discard) OrderTransitioned(string, string)               {}
func (Discard) ObserveHTTP(string, string, int, time.Duration) {}
