package domain

// Availability is the verdict on whether a (date, venue, slot) combination
// may be booked. When Available is false, Reason carries the human-readable
// explanation and ConflictingEvent the label of an already-booked event
// that blocks the request.
type Availability struct {
	Available        bool
	Reason           string
	ConflictingEvent string
}

// Availability reasons. These strings are user-visible notification text.
const (
	ReasonFullDayBooked        = "venue booked for full day"
	ReasonPartialBlocksFullDay = "existing partial bookings block full-day booking"
	ReasonSlotTaken            = "slot already booked"
)

// CheckAvailability decides whether the slot is bookable at (dateKey, venue)
// given the current store state. It never mutates the state.
//
// The rules are checked in priority order, first match wins:
//  1. no bookings at all for (date, venue) -> available
//  2. Full Day already booked             -> blocked, full-day reason
//  3. requested slot is Full Day and any slot exists -> blocked,
//     conflicting event taken from the first booked slot in fixed order
//  4. the requested slot itself is booked -> blocked, slot-taken reason
//  5. otherwise                           -> available
//
// The ordering is a policy contract: rule 2 takes precedence over rule 4,
// so a full-day block masks the more specific slot-taken message.
func CheckAvailability(state StoreState, dateKey, venue string, slot Slot) Availability {
	venueDay := state.VenueDayFor(dateKey, venue)
	if len(venueDay) == 0 {
		return Availability{Available: true}
	}

	if event, ok := venueDay[SlotFullDay]; ok {
		return Availability{
			Available:        false,
			Reason:           ReasonFullDayBooked,
			ConflictingEvent: event,
		}
	}

	if slot.IsFullDay() {
		for _, booked := range Slots {
			if event, ok := venueDay[booked]; ok {
				return Availability{
					Available:        false,
					Reason:           ReasonPartialBlocksFullDay,
					ConflictingEvent: event,
				}
			}
		}
	}

	if event, ok := venueDay[slot]; ok {
		return Availability{
			Available:        false,
			Reason:           ReasonSlotTaken,
			ConflictingEvent: event,
		}
	}

	return Availability{Available: true}
}
