package get_day_schedule

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// StoreSnapshotter интерфейс для чтения состояния стора
type StoreSnapshotter interface {
	// Snapshot возвращает глубокую копию текущего состояния
	Snapshot() domain.StoreState
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
