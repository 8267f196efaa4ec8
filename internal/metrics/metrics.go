package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ground_booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route.",
		},
		[]string{"route"},
	)

	bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ground_booking",
		Name:      "bookings_created_total",
		Help:      "Bookings created.",
	})

	bookingsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ground_booking",
		Name:      "bookings_cancelled_total",
		Help:      "Bookings cancelled.",
	})

	paymentsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ground_booking",
		Name:      "payments_recorded_total",
		Help:      "Payments recorded.",
	})
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingsCancelled, paymentsRecorded)
	})
}

// IncHTTP increments the request counter for a route label.
func IncHTTP(route string) { httpRequests.WithLabelValues(route).Inc() }

// IncBookingCreated increments the bookings-created counter.
func IncBookingCreated() { bookingsCreated.Inc() }

// IncBookingCancelled increments the bookings-cancelled counter.
func IncBookingCancelled() { bookingsCancelled.Inc() }

// IncPaymentRecorded increments the payments-recorded counter.
func IncPaymentRecorded() { paymentsRecorded.Inc() }
