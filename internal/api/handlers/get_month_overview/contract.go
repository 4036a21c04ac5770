package get_month_overview

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/calendar/models"
)

// CalendarService интерфейс сервиса календаря
type CalendarService interface {
	MonthOverview(ctx context.Context, year, month int, venue string) (*models.MonthOverview, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
