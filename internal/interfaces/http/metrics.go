package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas del núcleo de órdenes, expuestas en /metrics.
var (
	ordersPlacedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventrack_orders_placed_total",
		Help: "Órdenes colocadas por tipo y resultado (ok, invalid, insufficient_stock, error).",
	}, []string{"type", "outcome"})

	orderPlacementSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inventrack_order_placement_seconds",
		Help:    "Duración de la transacción de colocación de orden.",
		Buckets: prometheus.DefBuckets,
	})
)
