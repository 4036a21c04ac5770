package domain

import (
	"fmt"
	"time"
)

// VenueDay maps a slot to the event label booked into it.
// A slot is either absent or holds exactly one event label.
type VenueDay map[Slot]string

// DayBookings maps a venue to its bookings for one calendar day
type DayBookings map[string]VenueDay

// StoreState is the authoritative record of all bookings:
// dateKey -> venue -> slot -> event label.
// Keys are unique per level; insertion order is irrelevant.
type StoreState map[string]DayBookings

// DateKey returns the canonical string form of a calendar date
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDateKey parses a canonical dateKey, rejecting anything that is not
// a zero-padded YYYY-MM-DD string
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateFormat, key)
	if err != nil {
		return time.Time{}, err
	}
	// time.Parse accepts what it produces; require exact identity so keys
	// survive save/load cycles unchanged.
	if t.Format(DateFormat) != key {
		return time.Time{}, fmt.Errorf("date key %q is not in canonical form", key)
	}
	return t, nil
}

// VenueDayFor returns the bookings for (dateKey, venue), or nil if none exist
func (s StoreState) VenueDayFor(dateKey, venue string) VenueDay {
	if day, ok := s[dateKey]; ok {
		return day[venue]
	}
	return nil
}

// BookedSlots returns the booked slots for (dateKey, venue) in the fixed
// slot order
func (s StoreState) BookedSlots(dateKey, venue string) []Slot {
	venueDay := s.VenueDayFor(dateKey, venue)
	if len(venueDay) == 0 {
		return nil
	}

	booked := make([]Slot, 0, len(venueDay))
	for _, slot := range Slots {
		if _, ok := venueDay[slot]; ok {
			booked = append(booked, slot)
		}
	}
	return booked
}

// Clone returns a deep copy of the store state
func (s StoreState) Clone() StoreState {
	clone := make(StoreState, len(s))
	for dateKey, day := range s {
		dayClone := make(DayBookings, len(day))
		for venue, venueDay := range day {
			venueDayClone := make(VenueDay, len(venueDay))
			for slot, event := range venueDay {
				venueDayClone[slot] = event
			}
			dayClone[venue] = venueDayClone
		}
		clone[dateKey] = dayClone
	}
	return clone
}

// WithBooking returns a new store state with the single new entry written
// at s[dateKey][venue][slot] = event, creating intermediate mapping levels
// as needed. The receiver is never mutated: either the full nested path
// exists in the returned state or the caller keeps the old one unchanged.
func (s StoreState) WithBooking(dateKey, venue string, slot Slot, event string) StoreState {
	next := s.Clone()

	day, ok := next[dateKey]
	if !ok {
		day = make(DayBookings)
		next[dateKey] = day
	}

	venueDay, ok := day[venue]
	if !ok {
		venueDay = make(VenueDay)
		day[venue] = venueDay
	}

	venueDay[slot] = event
	return next
}

// Validate checks the structural invariants of the store:
// canonical date keys, known slots, non-empty event labels, and the
// mutual exclusion of Full Day with every other slot on the same
// (date, venue)
func (s StoreState) Validate() error {
	for dateKey, day := range s {
		if _, err := ParseDateKey(dateKey); err != nil {
			return fmt.Errorf("invalid date key %q: %v", dateKey, err)
		}

		for venue, venueDay := range day {
			if venue == "" {
				return fmt.Errorf("empty venue key on %s", dateKey)
			}

			for slot, event := range venueDay {
				if !slot.IsValid() {
					return fmt.Errorf("unknown slot %q at (%s, %s)", slot, dateKey, venue)
				}
				if event == "" {
					return fmt.Errorf("empty event label at (%s, %s, %s)", dateKey, venue, slot)
				}
			}

			if _, fullDay := venueDay[SlotFullDay]; fullDay && len(venueDay) > 1 {
				return fmt.Errorf("full day booking coexists with partial slots at (%s, %s)", dateKey, venue)
			}
		}
	}
	return nil
}
