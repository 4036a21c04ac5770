package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/storage/statestore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakePersister struct {
	loadState domain.StoreState
	loadErr   error
	saveErr   error
	saved     []domain.StoreState
}

func (p *fakePersister) Load(ctx context.Context) (domain.StoreState, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.loadState.Clone(), nil
}

func (p *fakePersister) Save(ctx context.Context, state domain.StoreState) error {
	p.saved = append(p.saved, state.Clone())
	return p.saveErr
}

type countingMetrics struct {
	persistFailures int
}

func (m *countingMetrics) IncPersistFailure() { m.persistFailures++ }

func TestLoadInitial_RestoresPersistedState(t *testing.T) {
	persisted := domain.StoreState{
		"2025-10-10": {
			"Hall 1": {domain.SlotFullDay: "Conference"},
		},
	}
	s := New(&fakePersister{loadState: persisted}, nopLogger{}, nil)

	s.LoadInitial(context.Background())

	assert.Equal(t, persisted, s.Snapshot())
}

func TestLoadInitial_NotFoundStartsEmpty(t *testing.T) {
	s := New(&fakePersister{loadErr: statestore.ErrStateNotFound}, nopLogger{}, nil)

	s.LoadInitial(context.Background())

	assert.Empty(t, s.Snapshot())
}

func TestLoadInitial_LoadFailureFallsBackToEmpty(t *testing.T) {
	s := New(&fakePersister{loadErr: errors.New("disk on fire")}, nopLogger{}, nil)

	s.LoadInitial(context.Background())

	assert.Empty(t, s.Snapshot(), "load errors must never be fatal")
}

func TestBook_CommitsAndPersists(t *testing.T) {
	persister := &fakePersister{loadErr: statestore.ErrStateNotFound}
	s := New(persister, nopLogger{}, nil)
	s.LoadInitial(context.Background())

	availability, err := s.Book(context.Background(), "2025-10-10", "Hall 1", domain.SlotMorning, "Wedding")

	require.NoError(t, err)
	assert.True(t, availability.Available)
	assert.Equal(t, "Wedding", s.Snapshot()["2025-10-10"]["Hall 1"][domain.SlotMorning])

	require.Len(t, persister.saved, 1, "every commit must trigger a save")
	assert.Equal(t, s.Snapshot(), persister.saved[0])
}

func TestBook_ConflictLeavesStateUntouched(t *testing.T) {
	persister := &fakePersister{}
	s := New(persister, nopLogger{}, nil)

	_, err := s.Book(context.Background(), "2025-10-10", "Hall 1", domain.SlotFullDay, "Conference")
	require.NoError(t, err)
	before := s.Snapshot()

	availability, err := s.Book(context.Background(), "2025-10-10", "Hall 1", domain.SlotEvening, "Party")

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.False(t, availability.Available)
	assert.Equal(t, domain.ReasonFullDayBooked, availability.Reason)
	assert.Equal(t, "Conference", availability.ConflictingEvent)

	assert.Equal(t, before, s.Snapshot())
	assert.Len(t, persister.saved, 1, "a rejected booking must not trigger a save")
}

func TestBook_SaveFailureKeepsBooking(t *testing.T) {
	persister := &fakePersister{saveErr: errors.New("disk full")}
	metricsCollector := &countingMetrics{}
	s := New(persister, nopLogger{}, metricsCollector)

	availability, err := s.Book(context.Background(), "2025-10-10", "Hall 1", domain.SlotMorning, "Wedding")

	require.NoError(t, err, "persistence is best-effort, the booking must stand")
	assert.True(t, availability.Available)
	assert.Equal(t, "Wedding", s.Snapshot()["2025-10-10"]["Hall 1"][domain.SlotMorning])
	assert.Equal(t, 1, metricsCollector.persistFailures)
}

func TestSnapshot_IsIsolatedFromStore(t *testing.T) {
	s := New(&fakePersister{}, nopLogger{}, nil)

	_, err := s.Book(context.Background(), "2025-10-10", "Hall 1", domain.SlotMorning, "Wedding")
	require.NoError(t, err)

	snapshot := s.Snapshot()
	snapshot["2025-10-10"]["Hall 1"][domain.SlotMorning] = "Changed"
	snapshot["2025-12-31"] = domain.DayBookings{"Hall 2": {domain.SlotFullDay: "Expo"}}

	assert.Equal(t, "Wedding", s.Snapshot()["2025-10-10"]["Hall 1"][domain.SlotMorning])
	assert.NotContains(t, s.Snapshot(), "2025-12-31")
}
