// Package monitoring collects prometheus metrics for the storefront.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the storefront metrics on a private registry
type Collector struct {
	registry *prometheus.Registry

	ordersPlaced prometheus.Counter
	orderTotal   prometheus.Histogram
	orderItems   prometheus.Histogram
	menuSearches *prometheus.CounterVec
	customItems  prometheus.Gauge
}

// NewCollector creates and registers the storefront metrics
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Number of orders placed",
		}),
		orderTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_total_dollars",
			Help:    "Order totals including tax",
			Buckets: prometheus.LinearBuckets(0, 10, 10),
		}),
		orderItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_items",
			Help:    "Number of items per order",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		menuSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "menu_searches_total",
			Help: "Menu searches by filter used",
		}, []string{"filter"}),
		customItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "custom_items",
			Help: "Number of custom menu items",
		}),
	}

	c.registry.MustRegister(
		c.ordersPlaced,
		c.orderTotal,
		c.orderItems,
		c.menuSearches,
		c.customItems,
	)
	return c
}

// RecordOrder records a placed order's total and item count
func (c *Collector) RecordOrder(total float64, items int) {
	c.ordersPlaced.Inc()
	c.orderTotal.Observe(total)
	c.orderItems.Observe(float64(items))
}

// RecordSearch counts a menu search by the filter that was applied
func (c *Collector) RecordSearch(filter string) {
	c.menuSearches.WithLabelValues(filter).Inc()
}

// SetCustomItemCount tracks the size of the custom item list
func (c *Collector) SetCustomItemCount(n int) {
	c.customItems.Set(float64(n))
}

// Handler serves the registry for the metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
