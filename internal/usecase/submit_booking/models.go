package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date      time.Time   // Дата бронирования (без времени)
	Venue     string      // Площадка из фиксированного каталога
	EventType string      // Тип события из фиксированного каталога
	Slot      domain.Slot // Слот дня
}

// Response модель ответа с зафиксированным бронированием
type Response struct {
	DateKey   string      // Каноничный ключ даты (YYYY-MM-DD)
	Venue     string      // Площадка
	EventType string      // Тип события
	Slot      domain.Slot // Слот дня
	Price     float64     // Оценочная стоимость (display only)
}
