package submit_booking

import (
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Date      string `json:"date"` // "2025-10-10"
	Venue     string `json:"venue"`
	EventType string `json:"eventType"`
	Slot      string `json:"slot"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Date      string  `json:"date"`
	Venue     string  `json:"venue"`
	EventType string  `json:"eventType"`
	Slot      string  `json:"slot"`
	Price     float64 `json:"price"`
}

// ConflictResponse HTTP response model для отказа по доступности
type ConflictResponse struct {
	Error            string  `json:"error"`
	Reason           string  `json:"reason"`
	ConflictingEvent *string `json:"conflictingEvent,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	date, err := domain.ParseDateKey(r.Date)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		Date:      date,
		Venue:     r.Venue,
		EventType: r.EventType,
		Slot:      domain.Slot(r.Slot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		Date:      resp.DateKey,
		Venue:     resp.Venue,
		EventType: resp.EventType,
		Slot:      resp.Slot.String(),
		Price:     resp.Price,
	}
}
