package get_day_schedule

import (
	getDaySchedule "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_day_schedule"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date  string     `json:"date"`
	Venue string     `json:"venue"`
	Slots []SlotInfo `json:"slots"`
}

// SlotInfo состояние одного слота
type SlotInfo struct {
	Slot             string  `json:"slot"`
	Booked           bool    `json:"booked"`
	Event            *string `json:"event,omitempty"`
	Available        bool    `json:"available"`
	Reason           *string `json:"reason,omitempty"`
	ConflictingEvent *string `json:"conflictingEvent,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotInfo, len(resp.Slots))
	for i, slot := range resp.Slots {
		info := SlotInfo{
			Slot:      slot.Slot.String(),
			Booked:    slot.Booked,
			Available: slot.Available,
		}
		if slot.Booked {
			info.Event = ptr.Ptr(slot.Event)
		}
		if slot.Reason != "" {
			info.Reason = ptr.Ptr(slot.Reason)
		}
		if slot.ConflictingEvent != "" {
			info.ConflictingEvent = ptr.Ptr(slot.ConflictingEvent)
		}
		slots[i] = info
	}

	return &DayScheduleResponse{
		Date:  resp.DateKey,
		Venue: resp.Venue,
		Slots: slots,
	}
}
