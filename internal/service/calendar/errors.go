package calendar

import "errors"

var (
	// ErrUnknownVenue возвращается, когда площадка не входит в каталог
	ErrUnknownVenue = errors.New("calendar: unknown venue")

	// ErrInvalidMonth возвращается при некорректном годе или месяце
	ErrInvalidMonth = errors.New("calendar: invalid year or month")
)
