package quote_price

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UseCase use case оценки стоимости бронирования.
// Чистая функция от (тип события, слот): одинаковые входы всегда дают
// одинаковый результат. Неполный выбор дает 0 — цена не отображается,
// пока не выбраны и тип события, и слот.
type UseCase struct {
	priceList domain.PriceList
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(priceList domain.PriceList, logger Logger) *UseCase {
	return &UseCase{
		priceList: priceList,
		logger:    logger,
	}
}

// Execute выполняет use case оценки стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	amount := uc.priceList.Price(req.EventType, req.Slot)

	return &Response{
		EventType: req.EventType,
		Slot:      req.Slot,
		Amount:    amount,
	}, nil
}
