package models

// DayStatus статус дня в календарной сетке
type DayStatus string

const (
	// StatusFree на площадке нет бронирований в этот день
	StatusFree DayStatus = "free"
	// StatusPartial заняты отдельные слоты, но не весь день
	StatusPartial DayStatus = "partial"
	// StatusFullDay день занят целиком бронированием Full Day
	StatusFullDay DayStatus = "full_day"
)

// MonthOverview обзор месяца для календарной сетки
type MonthOverview struct {
	Year  int           // Год
	Month int           // Месяц (1-12)
	Venue string        // Площадка
	Days  []DayOverview // По одному элементу на каждый день месяца
}

// DayOverview состояние одного дня
type DayOverview struct {
	DateKey     string    // Каноничный ключ даты
	Day         int       // День месяца (1-31)
	Status      DayStatus // Статус для подсветки в сетке
	BookedSlots []string  // Занятые слоты в фиксированном порядке
}
