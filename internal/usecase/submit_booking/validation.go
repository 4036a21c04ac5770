package submit_booking

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// validateRequest валидирует входные данные запроса.
// Порядок проверок — часть контракта: отсутствие выбора (тип события или
// слот) диагностируется раньше любых проверок доступности.
func validateRequest(req *Request, catalog domain.Catalog) error {
	if req.EventType == "" || req.Slot == "" {
		return ErrMissingSelection
	}

	if req.Date.IsZero() {
		return ErrInvalidDate
	}

	if !catalog.HasVenue(req.Venue) {
		return ErrUnknownVenue
	}

	if !catalog.HasEventType(req.EventType) {
		return ErrUnknownEventType
	}

	if !req.Slot.IsValid() {
		return ErrUnknownSlot
	}

	return nil
}
