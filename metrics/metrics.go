package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kart_cart_mutations_total",
			Help: "Total number of cart mutations by operation.",
		},
		[]string{"op"},
	)

	ordersPlacedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kart_orders_placed_total",
			Help: "Total number of successfully placed orders.",
		},
	)

	persistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kart_persistence_failures_total",
			Help: "Total number of storage adapter failures by operation.",
		},
		[]string{"op"},
	)
)

func CartMutation(op string) {
	cartMutationsTotal.WithLabelValues(op).Inc()
}

func OrderPlaced() {
	ordersPlacedTotal.Inc()
}

func PersistenceFailure(op string) {
	persistenceFailuresTotal.WithLabelValues(op).Inc()
}
