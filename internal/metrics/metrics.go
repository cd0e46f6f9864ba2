package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the booking engine instruments. All methods are safe on a
// nil receiver so use cases can run without instrumentation.
type Metrics struct {
	Bookings        *prometheus.CounterVec
	Cancellations   *prometheus.CounterVec
	SlotQueries     prometheus.Counter
	SlotsReturned   prometheus.Histogram
	UseCaseDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer, namespace string) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Bookings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		Cancellations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Cancellation attempts by outcome",
		}, []string{"outcome"}),
		SlotQueries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_queries_total",
			Help:      "Available slot computations",
		}),
		SlotsReturned: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slots_returned",
			Help:      "Number of slots returned per query",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		UseCaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "usecase_duration_seconds",
			Help:      "Duration of use case executions",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"usecase"}),
	}
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.Bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCancellation(outcome string) {
	if m == nil {
		return
	}
	m.Cancellations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSlots(n int) {
	if m == nil {
		return
	}
	m.SlotQueries.Inc()
	m.SlotsReturned.Observe(float64(n))
}

// Track returns a func that records the elapsed time for usecase.
func (m *Metrics) Track(usecase string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.UseCaseDuration.WithLabelValues(usecase).Observe(time.Since(start).Seconds())
	}
}
