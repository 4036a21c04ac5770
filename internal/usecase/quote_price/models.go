package quote_price

import "github.com/m04kA/SMC-VenueBooking/internal/domain"

// Request модель запроса оценки стоимости.
// Оба поля могут быть пустыми: пока выбор не сделан, цена не считается.
type Request struct {
	EventType string      // Тип события
	Slot      domain.Slot // Слот дня
}

// Response модель ответа с оценочной стоимостью
type Response struct {
	EventType string      // Тип события
	Slot      domain.Slot // Слот дня
	Amount    float64     // Оценочная стоимость; 0, пока выбор неполный
}
