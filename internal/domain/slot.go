package domain

// Slot represents a named subdivision of a calendar day used as the
// booking granularity
type Slot string

const (
	SlotMorning   Slot = "Morning"
	SlotAfternoon Slot = "Afternoon"
	SlotEvening   Slot = "Evening"
	SlotFullDay   Slot = "Full Day"
)

// Slots is the fixed ordered set of day partitions.
// The ordering is part of the availability contract: when a full-day
// request is blocked by partial bookings, the reported conflicting event
// is taken from the first booked slot in this order.
var Slots = []Slot{
	SlotMorning,
	SlotAfternoon,
	SlotEvening,
	SlotFullDay,
}

// PartialSlots is the ordered set of slots that partition the day,
// excluding the mutually exclusive Full Day slot
var PartialSlots = []Slot{
	SlotMorning,
	SlotAfternoon,
	SlotEvening,
}

// IsValid returns true if the slot is one of the fixed day partitions
func (s Slot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotFullDay:
		return true
	default:
		return false
	}
}

// IsFullDay returns true if the slot occupies the entire day
func (s Slot) IsFullDay() bool {
	return s == SlotFullDay
}

// String returns the slot name as it appears in the store and on the wire
func (s Slot) String() string {
	return string(s)
}
