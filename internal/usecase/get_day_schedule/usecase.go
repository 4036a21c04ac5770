package get_day_schedule

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UseCase use case получения расписания площадки на день.
// Чистое чтение: все вердикты вычисляются по одному снимку состояния.
type UseCase struct {
	store   StoreSnapshotter
	catalog domain.Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store StoreSnapshotter, catalog domain.Catalog, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет use case получения расписания дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !uc.catalog.HasVenue(req.Venue) {
		uc.logger.Warn("GetDaySchedule: unknown venue %q", req.Venue)
		return nil, ErrUnknownVenue
	}

	dateKey := domain.DateKey(req.Date)
	state := uc.store.Snapshot()
	venueDay := state.VenueDayFor(dateKey, req.Venue)

	slots := make([]SlotInfo, 0, len(domain.Slots))
	for _, slot := range domain.Slots {
		event, booked := venueDay[slot]
		availability := domain.CheckAvailability(state, dateKey, req.Venue, slot)

		slots = append(slots, SlotInfo{
			Slot:             slot,
			Booked:           booked,
			Event:            event,
			Available:        availability.Available,
			Reason:           availability.Reason,
			ConflictingEvent: availability.ConflictingEvent,
		})
	}

	uc.logger.Info("GetDaySchedule: date=%s, venue=%s, booked=%d",
		dateKey, req.Venue, len(venueDay))

	return &Response{
		DateKey: dateKey,
		Venue:   req.Venue,
		Slots:   slots,
	}, nil
}
