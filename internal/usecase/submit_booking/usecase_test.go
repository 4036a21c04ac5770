package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/store"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type memPersister struct {
	saved domain.StoreState
}

func (p *memPersister) Load(ctx context.Context) (domain.StoreState, error) {
	return p.saved.Clone(), nil
}

func (p *memPersister) Save(ctx context.Context, state domain.StoreState) error {
	p.saved = state.Clone()
	return nil
}

func newTestUseCase(t *testing.T) (*UseCase, *store.Store) {
	t.Helper()
	bookingStore := store.New(&memPersister{}, nopLogger{}, nil)
	uc := NewUseCase(bookingStore, domain.DefaultCatalog(), domain.DefaultPriceList(), nopLogger{})
	return uc, bookingStore
}

func date(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := domain.ParseDateKey(key)
	require.NoError(t, err)
	return parsed
}

func TestExecute_BooksIntoEmptyStore(t *testing.T) {
	uc, bookingStore := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      date(t, "2025-10-10"),
		Venue:     "Hall 1",
		EventType: "Wedding",
		Slot:      domain.SlotMorning,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-10", resp.DateKey)
	assert.InDelta(t, 50000, resp.Price, 1e-9, "price = basePrice(Wedding) * 1")

	state := bookingStore.Snapshot()
	require.Len(t, state, 1)
	assert.Equal(t, "Wedding", state["2025-10-10"]["Hall 1"][domain.SlotMorning])
}

func TestExecute_FullDayRejectedOverPartialBooking(t *testing.T) {
	uc, bookingStore := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      date(t, "2025-10-10"),
		Venue:     "Hall 1",
		EventType: "Wedding",
		Slot:      domain.SlotMorning,
	})
	require.NoError(t, err)

	before := bookingStore.Snapshot()

	_, err = uc.Execute(context.Background(), &Request{
		Date:      date(t, "2025-10-10"),
		Venue:     "Hall 1",
		EventType: "Meeting",
		Slot:      domain.SlotFullDay,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonPartialBlocksFullDay, conflict.Availability.Reason)
	assert.Equal(t, "Wedding", conflict.Availability.ConflictingEvent)

	assert.Equal(t, before, bookingStore.Snapshot(), "store must be unchanged after a conflict")
}

func TestExecute_PartialRejectedOverFullDayBooking(t *testing.T) {
	uc, bookingStore := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      date(t, "2025-10-10"),
		Venue:     "Hall 1",
		EventType: "Ceremony",
		Slot:      domain.SlotFullDay,
	})
	require.NoError(t, err)

	before := bookingStore.Snapshot()

	_, err = uc.Execute(context.Background(), &Request{
		Date:      date(t, "2025-10-10"),
		Venue:     "Hall 1",
		EventType: "Birthday",
		Slot:      domain.SlotEvening,
	})

	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonFullDayBooked, conflict.Availability.Reason)
	assert.Equal(t, "Ceremony", conflict.Availability.ConflictingEvent)

	assert.Equal(t, before, bookingStore.Snapshot())
}

func TestExecute_MissingSelection(t *testing.T) {
	uc, bookingStore := newTestUseCase(t)
	before := bookingStore.Snapshot()

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "empty event type",
			req: &Request{
				Date:  date(t, "2025-10-10"),
				Venue: "Hall 1",
				Slot:  domain.SlotMorning,
			},
		},
		{
			name: "empty slot",
			req: &Request{
				Date:      date(t, "2025-10-10"),
				Venue:     "Hall 1",
				EventType: "Wedding",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrMissingSelection)
			assert.Equal(t, before, bookingStore.Snapshot())
		})
	}
}

func TestExecute_UnknownCatalogEntries(t *testing.T) {
	uc, _ := newTestUseCase(t)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "unknown venue",
			req: &Request{
				Date:      date(t, "2025-10-10"),
				Venue:     "Hall 9",
				EventType: "Wedding",
				Slot:      domain.SlotMorning,
			},
			wantErr: ErrUnknownVenue,
		},
		{
			name: "unknown event type",
			req: &Request{
				Date:      date(t, "2025-10-10"),
				Venue:     "Hall 1",
				EventType: "Hackathon",
				Slot:      domain.SlotMorning,
			},
			wantErr: ErrUnknownEventType,
		},
		{
			name: "unknown slot",
			req: &Request{
				Date:      date(t, "2025-10-10"),
				Venue:     "Hall 1",
				EventType: "Wedding",
				Slot:      domain.Slot("Night"),
			},
			wantErr: ErrUnknownSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_FullDayThenEverythingBlocked(t *testing.T) {
	uc, bookingStore := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      date(t, "2025-11-01"),
		Venue:     "Hall 2",
		EventType: "Meeting",
		Slot:      domain.SlotFullDay,
	})
	require.NoError(t, err)
	assert.InDelta(t, 30000, resp.Price, 1e-9, "price = basePrice(Meeting) * 3")

	for _, slot := range domain.Slots {
		_, err := uc.Execute(context.Background(), &Request{
			Date:      date(t, "2025-11-01"),
			Venue:     "Hall 2",
			EventType: "Birthday",
			Slot:      slot,
		})
		require.Error(t, err, "slot %s must be blocked", slot)

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, domain.ReasonFullDayBooked, conflict.Availability.Reason)
	}

	assert.NoError(t, bookingStore.Snapshot().Validate())
}

func TestExecute_MutualExclusionHoldsAfterCommits(t *testing.T) {
	uc, bookingStore := newTestUseCase(t)

	requests := []*Request{
		{Date: date(t, "2025-10-10"), Venue: "Hall 1", EventType: "Wedding", Slot: domain.SlotMorning},
		{Date: date(t, "2025-10-10"), Venue: "Hall 1", EventType: "Party", Slot: domain.SlotFullDay},
		{Date: date(t, "2025-10-10"), Venue: "Hall 1", EventType: "Birthday", Slot: domain.SlotEvening},
		{Date: date(t, "2025-10-10"), Venue: "Hall 2", EventType: "Ceremony", Slot: domain.SlotFullDay},
		{Date: date(t, "2025-10-10"), Venue: "Hall 2", EventType: "Meeting", Slot: domain.SlotMorning},
	}

	for _, req := range requests {
		_, _ = uc.Execute(context.Background(), req)
		require.NoError(t, bookingStore.Snapshot().Validate(),
			"invariants must hold after every command")
	}
}
