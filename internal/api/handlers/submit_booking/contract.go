package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/notify"
	submitBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/submit_booking"
)

// SubmitBookingUseCase интерфейс use case создания бронирования
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

// Notifier интерфейс центра транзиентных уведомлений
type Notifier interface {
	Show(kind notify.Kind, message string)
}

// Metrics интерфейс для учета бронирований.
// Может быть nil, если метрики выключены.
type Metrics interface {
	IncBooking(venue, slot string)
	IncBookingConflict(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
