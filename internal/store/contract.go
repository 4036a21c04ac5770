package store

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Persister интерфейс границы персистентности: загрузка и сохранение
// единственного сериализованного блоба состояния
type Persister interface {
	Load(ctx context.Context) (domain.StoreState, error)
	Save(ctx context.Context, state domain.StoreState) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета событий стора.
// Может быть nil, если метрики выключены.
type Metrics interface {
	IncPersistFailure()
}
