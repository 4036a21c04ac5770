package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/calendar/models"
)

// Service сервис обзора календаря.
// Производные значения (статус дня, занятые слоты) пересчитываются по
// требованию из снимка стора; кэширования нет, корректность важнее
// мемоизации при таких объемах данных.
type Service struct {
	store   StoreSnapshotter
	catalog domain.Catalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(store StoreSnapshotter, catalog domain.Catalog, logger Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// MonthOverview возвращает состояние каждого дня месяца для площадки:
// free — бронирований нет, partial — заняты отдельные слоты,
// full_day — день занят целиком
func (s *Service) MonthOverview(ctx context.Context, year, month int, venue string) (*models.MonthOverview, error) {
	if year < 1 || month < 1 || month > 12 {
		s.logger.Warn("MonthOverview: invalid year=%d month=%d", year, month)
		return nil, ErrInvalidMonth
	}
	if !s.catalog.HasVenue(venue) {
		s.logger.Warn("MonthOverview: unknown venue %q", venue)
		return nil, ErrUnknownVenue
	}

	state := s.store.Snapshot()

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]models.DayOverview, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		dateKey := domain.DateKey(first.AddDate(0, 0, day-1))
		booked := state.BookedSlots(dateKey, venue)

		days = append(days, models.DayOverview{
			DateKey:     dateKey,
			Day:         day,
			Status:      dayStatus(booked),
			BookedSlots: slotNames(booked),
		})
	}

	s.logger.Info("MonthOverview: year=%d month=%d venue=%s", year, month, venue)

	return &models.MonthOverview{
		Year:  year,
		Month: month,
		Venue: venue,
		Days:  days,
	}, nil
}

// dayStatus выводит статус дня из занятых слотов.
// Full Day дает full_day; любые другие занятые слоты — partial.
func dayStatus(booked []domain.Slot) models.DayStatus {
	if len(booked) == 0 {
		return models.StatusFree
	}
	for _, slot := range booked {
		if slot.IsFullDay() {
			return models.StatusFullDay
		}
	}
	return models.StatusPartial
}

func slotNames(slots []domain.Slot) []string {
	if len(slots) == 0 {
		return nil
	}
	names := make([]string, len(slots))
	for i, slot := range slots {
		names[i] = slot.String()
	}
	return names
}
