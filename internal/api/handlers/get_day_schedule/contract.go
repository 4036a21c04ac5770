package get_day_schedule

import (
	"context"

	getDaySchedule "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_day_schedule"
)

// GetDayScheduleUseCase интерфейс use case расписания дня
type GetDayScheduleUseCase interface {
	Execute(ctx context.Context, req *getDaySchedule.Request) (*getDaySchedule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
