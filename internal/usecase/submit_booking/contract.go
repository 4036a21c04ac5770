package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// BookingStore интерфейс стора бронирований
type BookingStore interface {
	// Book атомарно проверяет доступность и записывает бронирование
	Book(ctx context.Context, dateKey, venue string, slot domain.Slot, event string) (domain.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
