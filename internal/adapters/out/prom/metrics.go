// Package prom exposes marketplace delivery metrics in Prometheus
// format. The values are snapshots of the record store, refreshed by a
// scheduled job, so every metric is a gauge regardless of whether it
// only ever grows.
package prom

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_orders_total",
			Help: "Total number of pizza orders",
		},
	)

	OrdersDelivered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_orders_delivered",
			Help: "Total number of delivered orders",
		},
	)

	OrdersInTransit = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_orders_in_transit",
			Help: "Number of orders currently in transit",
		},
	)

	OrdersDispatched = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_orders_dispatched",
			Help: "Number of orders dispatched",
		},
	)

	DeliveryRatePercent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_delivery_rate_percent",
			Help: "Percentage of orders delivered",
		},
	)

	DeliveredToday = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_delivered_today",
			Help: "Orders delivered in the last day",
		},
	)

	DeliveredWeek = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_delivered_week",
			Help: "Orders delivered in the last 7 days",
		},
	)

	DeliveredMonth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pizza_delivered_month",
			Help: "Orders delivered in the last 30 days",
		},
	)

	DeliveredBySupplier = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pizza_delivered_by_supplier",
			Help: "Delivered orders per supplier",
		},
		[]string{"supplier"},
	)

	DeliveredByDriver = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pizza_delivered_by_driver",
			Help: "Delivered orders per driver",
		},
		[]string{"driver"},
	)
)

// Register registers all marketplace metrics with the default registry.
func Register() {
	prometheus.MustRegister(OrdersTotal)
	prometheus.MustRegister(OrdersDelivered)
	prometheus.MustRegister(OrdersInTransit)
	prometheus.MustRegister(OrdersDispatched)
	prometheus.MustRegister(DeliveryRatePercent)
	prometheus.MustRegister(DeliveredToday)
	prometheus.MustRegister(DeliveredWeek)
	prometheus.MustRegister(DeliveredMonth)
	prometheus.MustRegister(DeliveredBySupplier)
	prometheus.MustRegister(DeliveredByDriver)
}
