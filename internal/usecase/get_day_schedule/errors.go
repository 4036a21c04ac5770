package get_day_schedule

import "errors"

var (
	// ErrUnknownVenue возвращается, когда площадка не входит в каталог
	ErrUnknownVenue = errors.New("get_day_schedule: unknown venue")

	// ErrInvalidDate возвращается при нулевой дате запроса
	ErrInvalidDate = errors.New("get_day_schedule: invalid date")
)
