package get_day_schedule

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Request модель запроса расписания дня
type Request struct {
	Date  time.Time // Дата (без времени)
	Venue string    // Площадка из фиксированного каталога
}

// Response расписание площадки на день: каждый слот с его состоянием
type Response struct {
	DateKey string     // Каноничный ключ даты
	Venue   string     // Площадка
	Slots   []SlotInfo // Все слоты в фиксированном порядке
}

// SlotInfo состояние одного слота
type SlotInfo struct {
	Slot             domain.Slot // Слот дня
	Booked           bool        // Слот уже занят
	Event            string      // Метка события, если слот занят
	Available        bool        // Можно ли забронировать этот слот сейчас
	Reason           string      // Причина недоступности
	ConflictingEvent string      // Метка события, блокирующего бронирование
}
