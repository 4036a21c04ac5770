package submit_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

var (
	// ErrMissingSelection возвращается, когда тип события или слот не выбраны
	ErrMissingSelection = errors.New("submit_booking: event type and slot are required")

	// ErrUnknownVenue возвращается, когда площадка не входит в каталог
	ErrUnknownVenue = errors.New("submit_booking: unknown venue")

	// ErrUnknownEventType возвращается, когда тип события не входит в каталог
	ErrUnknownEventType = errors.New("submit_booking: unknown event type")

	// ErrUnknownSlot возвращается, когда слот не входит в фиксированный набор
	ErrUnknownSlot = errors.New("submit_booking: unknown slot")

	// ErrInvalidDate возвращается при нулевой дате бронирования
	ErrInvalidDate = errors.New("submit_booking: invalid booking date")

	// ErrSlotConflict возвращается, когда слот не проходит проверку доступности
	ErrSlotConflict = errors.New("submit_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// ConflictError несет вердикт проверки доступности: причину отказа и
// метку конфликтующего события. Разворачивается в ErrSlotConflict.
type ConflictError struct {
	Availability domain.Availability
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("submit_booking: slot is not available: %s", e.Availability.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
