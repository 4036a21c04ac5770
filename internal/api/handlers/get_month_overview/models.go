package get_month_overview

import "github.com/m04kA/SMC-VenueBooking/internal/service/calendar/models"

// MonthOverviewResponse HTTP response model
type MonthOverviewResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Venue string        `json:"venue"`
	Days  []DayOverview `json:"days"`
}

// DayOverview состояние одного дня месяца
type DayOverview struct {
	Date        string   `json:"date"`
	Day         int      `json:"day"`
	Status      string   `json:"status"`
	BookedSlots []string `json:"bookedSlots,omitempty"`
}

// FromServiceModel конвертирует модель сервиса в HTTP response
func FromServiceModel(overview *models.MonthOverview) *MonthOverviewResponse {
	days := make([]DayOverview, len(overview.Days))
	for i, day := range overview.Days {
		days[i] = DayOverview{
			Date:        day.DateKey,
			Day:         day.Day,
			Status:      string(day.Status),
			BookedSlots: day.BookedSlots,
		}
	}

	return &MonthOverviewResponse{
		Year:  overview.Year,
		Month: overview.Month,
		Venue: overview.Venue,
		Days:  days,
	}
}
