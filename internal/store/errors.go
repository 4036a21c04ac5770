package store

import "errors"

var (
	// ErrSlotConflict возвращается, когда слот не проходит проверку доступности
	ErrSlotConflict = errors.New("store: slot is not available")
)
