package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP метрики
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Доменные метрики бронирований
	BookingsCreated       prometheus.Counter
	BookingsCancelled     prometheus.Counter
	BookingCreateFailures *prometheus.CounterVec

	// Метрики парковочных слотов
	SlotsTotal     prometheus.Gauge
	SlotsAvailable prometheus.Gauge
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of bookings cancelled",
			ConstLabels: constLabels,
		}),

		BookingCreateFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_create_failures_total",
			Help:        "Total number of rejected booking creation attempts by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		SlotsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_slots_total",
			Help:        "Total number of parking slots in the pool",
			ConstLabels: constLabels,
		}),

		SlotsAvailable: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "parking_slots_available",
			Help:        "Current number of available parking slots",
			ConstLabels: constLabels,
		}),
	}
}
