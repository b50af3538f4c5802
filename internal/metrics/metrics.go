package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics holds Prometheus instrumentation for order processing.
type OrderMetrics struct {
	ordersCreated prometheus.Counter
	ordersFailed  *prometheus.CounterVec
	orderItems    prometheus.Counter
	orderTotal    prometheus.Histogram
}

// NewOrderMetrics registers order metrics on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer registers order metrics on the given registerer.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pizza_orders_created_total",
			Help: "Total number of orders created successfully",
		}),
		ordersFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "pizza_orders_failed_total",
			Help: "Total number of order creations rejected or failed",
		}, []string{"reason"}),
		orderItems: registerCounter(registerer, prometheus.CounterOpts{
			Name: "pizza_order_items_total",
			Help: "Total number of line items persisted",
		}),
		orderTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "pizza_order_total_value",
			Help:    "Distribution of order totals",
			Buckets: []float64{5, 10, 20, 40, 80, 160},
		}),
	}
}

// OrderCreated records one successful order with its item count and total.
func (m *OrderMetrics) OrderCreated(total float64, itemCount int) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	m.orderItems.Add(float64(itemCount))
	m.orderTotal.Observe(total)
}

// OrderFailed records one rejected or failed order creation.
func (m *OrderMetrics) OrderFailed(reason string) {
	if m == nil {
		return
	}
	m.ordersFailed.WithLabelValues(reason).Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if existing, ok := register(registerer, c); ok {
		return existing.(prometheus.Counter)
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if existing, ok := register(registerer, c); ok {
		return existing.(*prometheus.CounterVec)
	}
	return c
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if existing, ok := register(registerer, h); ok {
		return existing.(prometheus.Histogram)
	}
	return h
}

// register attempts registration and reuses the already-registered
// collector on duplicate registration.
func register(registerer prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, bool) {
	err := registerer.Register(c)
	if err == nil {
		return nil, false
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector, true
	}
	return nil, false
}
