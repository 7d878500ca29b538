package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// OrdersTotal counts order creation attempts by outcome
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of orders by outcome",
		},
		[]string{"outcome"},
	)

	// OrderAmount tracks computed order totals
	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_total_amount",
			Help:    "Computed order totals in menu currency units",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	// UnresolvedLineItems counts line items priced at zero because their menu item was missing
	UnresolvedLineItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_unresolved_line_items_total",
			Help: "Line items whose menu item could not be resolved at order time",
		},
	)

	// MenuItemsChanged counts catalog writes by operation
	MenuItemsChanged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_item_changes_total",
			Help: "Catalog writes by operation",
		},
		[]string{"operation"},
	)
)

const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)
