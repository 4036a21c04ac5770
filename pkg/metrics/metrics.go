package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор прометеус-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsTotal         *prometheus.CounterVec
	bookingConflictsTotal *prometheus.CounterVec
	persistFailuresTotal  prometheus.Counter
}

// New регистрирует и возвращает коллектор метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "venue_bookings_total",
			Help:        "Total number of committed bookings.",
			ConstLabels: constLabels,
		}, []string{"venue", "slot"}),

		bookingConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "venue_booking_conflicts_total",
			Help:        "Total number of booking attempts rejected by the availability rules.",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		persistFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "venue_state_persist_failures_total",
			Help:        "Total number of best-effort state persistence failures.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// IncBooking учитывает успешно зафиксированное бронирование
func (m *Metrics) IncBooking(venue, slot string) {
	m.bookingsTotal.WithLabelValues(venue, slot).Inc()
}

// IncBookingConflict учитывает отклоненную попытку бронирования
func (m *Metrics) IncBookingConflict(reason string) {
	m.bookingConflictsTotal.WithLabelValues(reason).Inc()
}

// IncPersistFailure учитывает неудачную попытку сохранить состояние
func (m *Metrics) IncPersistFailure() {
	m.persistFailuresTotal.Inc()
}
