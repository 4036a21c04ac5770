package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

type nopLogger struct{}

var _ Logger = nopLogger{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubStore struct {
	state domain.StoreState
}

func (s *stubStore) Snapshot() domain.StoreState {
	return s.state.Clone()
}

func newTestUseCase(state domain.StoreState) *UseCase {
	return NewUseCase(&stubStore{state: state}, domain.DefaultCatalog(), nopLogger{})
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := newTestUseCase(make(domain.StoreState))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		Venue: "Hall 1",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-10", resp.DateKey)
	require.Len(t, resp.Slots, len(domain.Slots))

	for i, info := range resp.Slots {
		assert.Equal(t, domain.Slots[i], info.Slot, "slots must come back in fixed order")
		assert.False(t, info.Booked)
		assert.True(t, info.Available)
	}
}

func TestExecute_PartiallyBookedDay(t *testing.T) {
	uc := newTestUseCase(domain.StoreState{
		"2025-10-10": {
			"Hall 1": {domain.SlotMorning: "Wedding"},
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		Venue: "Hall 1",
	})
	require.NoError(t, err)

	bySlot := make(map[domain.Slot]SlotInfo, len(resp.Slots))
	for _, info := range resp.Slots {
		bySlot[info.Slot] = info
	}

	morning := bySlot[domain.SlotMorning]
	assert.True(t, morning.Booked)
	assert.Equal(t, "Wedding", morning.Event)
	assert.False(t, morning.Available)
	assert.Equal(t, domain.ReasonSlotTaken, morning.Reason)

	assert.True(t, bySlot[domain.SlotAfternoon].Available)
	assert.True(t, bySlot[domain.SlotEvening].Available)

	fullDay := bySlot[domain.SlotFullDay]
	assert.False(t, fullDay.Available, "partial bookings must block the full-day slot")
	assert.Equal(t, domain.ReasonPartialBlocksFullDay, fullDay.Reason)
	assert.Equal(t, "Wedding", fullDay.ConflictingEvent)
}

func TestExecute_FullDayBookedDay(t *testing.T) {
	uc := newTestUseCase(domain.StoreState{
		"2025-10-10": {
			"Hall 1": {domain.SlotFullDay: "Conference"},
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:  time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		Venue: "Hall 1",
	})
	require.NoError(t, err)

	for _, info := range resp.Slots {
		assert.False(t, info.Available, "slot %s must be blocked", info.Slot)
		assert.Equal(t, domain.ReasonFullDayBooked, info.Reason)
		assert.Equal(t, "Conference", info.ConflictingEvent)
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(make(domain.StoreState))

	_, err := uc.Execute(context.Background(), &Request{Venue: "Hall 1"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		Date:  time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC),
		Venue: "Hall 9",
	})
	assert.ErrorIs(t, err, ErrUnknownVenue)
}
