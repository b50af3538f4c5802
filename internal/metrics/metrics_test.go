package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOrderMetrics_OrderCreated(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewOrderMetricsWithRegisterer(registry)

	m.OrderCreated(25.50, 3)
	m.OrderCreated(10.00, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.orderItems))
}

func TestOrderMetrics_OrderFailed(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewOrderMetricsWithRegisterer(registry)

	m.OrderFailed("empty_order")
	m.OrderFailed("empty_order")
	m.OrderFailed("unknown_pizza")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersFailed.WithLabelValues("empty_order")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersFailed.WithLabelValues("unknown_pizza")))
}

func TestOrderMetrics_NilSafe(t *testing.T) {
	var m *OrderMetrics

	// Services may run without metrics wired.
	m.OrderCreated(10.00, 1)
	m.OrderFailed("store_error")
}

func TestOrderMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := NewOrderMetricsWithRegisterer(registry)
	second := NewOrderMetricsWithRegisterer(registry)

	first.OrderCreated(10.00, 1)
	second.OrderCreated(20.00, 2)

	// Both instances share the underlying collectors.
	assert.Equal(t, 2.0, testutil.ToFloat64(second.ordersCreated))
}
