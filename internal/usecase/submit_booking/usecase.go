package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/store"
)

// UseCase use case создания бронирования.
// Валидирует выбор, проверяет доступность через стор и фиксирует
// бронирование по принципу "всё или ничего": при любой ошибке состояние
// стора остается нетронутым.
type UseCase struct {
	store     BookingStore
	catalog   domain.Catalog
	priceList domain.PriceList
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingStore BookingStore,
	catalog domain.Catalog,
	priceList domain.PriceList,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     bookingStore,
		catalog:   catalog,
		priceList: priceList,
		logger:    logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateKey := domain.DateKey(req.Date)

	uc.logger.Info("SubmitBooking: date=%s, venue=%s, event=%s, slot=%s",
		dateKey, req.Venue, req.EventType, req.Slot)

	// 1. Валидация выбора
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверка доступности и запись (атомарно, внутри стора)
	availability, err := uc.store.Book(ctx, dateKey, req.Venue, req.Slot, req.EventType)
	if err != nil {
		if errors.Is(err, store.ErrSlotConflict) {
			uc.logger.Warn("SubmitBooking: slot conflict at (%s, %s, %s): %s",
				dateKey, req.Venue, req.Slot, availability.Reason)
			return nil, &ConflictError{Availability: availability}
		}
		uc.logger.Error("SubmitBooking: failed to book (%s, %s, %s): %v",
			dateKey, req.Venue, req.Slot, err)
		return nil, fmt.Errorf("%w: failed to book: %v", ErrInternal, err)
	}

	// 3. Оценочная стоимость для отображения
	price := uc.priceList.Price(req.EventType, req.Slot)

	uc.logger.Info("SubmitBooking: booked (%s, %s, %s) for %s, price=%.2f",
		dateKey, req.Venue, req.Slot, req.EventType, price)

	return &Response{
		DateKey:   dateKey,
		Venue:     req.Venue,
		EventType: req.EventType,
		Slot:      req.Slot,
		Price:     price,
	}, nil
}
