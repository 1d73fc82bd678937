package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "medequip",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)

	rentalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "medequip",
			Name:      "rental_requests_total",
			Help:      "Rental request lifecycle events by outcome.",
		},
		[]string{"outcome"},
	)

	rentalsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "medequip",
			Name:      "rentals_confirmed_total",
			Help:      "Approved requests confirmed into active rentals.",
		},
	)

	purchasesPaid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "medequip",
			Name:      "purchases_paid_total",
			Help:      "Purchases that completed payment.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, rentalRequests, rentalsConfirmed, purchasesPaid)
	})
}

// IncHTTP increments the request counter for a route/status pair.
func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

// IncRentalRequest increments the rental request counter for an outcome
// (created, approved, rejected).
func IncRentalRequest(outcome string) {
	rentalRequests.WithLabelValues(outcome).Inc()
}

// IncRentalConfirmed increments the confirmed rentals counter.
func IncRentalConfirmed() {
	rentalsConfirmed.Inc()
}

// IncPurchasePaid increments the paid purchases counter.
func IncPurchasePaid() {
	purchasesPaid.Inc()
}
