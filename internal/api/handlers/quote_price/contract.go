package quote_price

import (
	"context"

	quotePrice "github.com/m04kA/SMC-VenueBooking/internal/usecase/quote_price"
)

// QuotePriceUseCase интерфейс use case оценки стоимости
type QuotePriceUseCase interface {
	Execute(ctx context.Context, req *quotePrice.Request) (*quotePrice.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
