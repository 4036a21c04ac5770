package store

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/storage/statestore"
)

// Store единственный источник истины по бронированиям.
// Держит состояние в памяти, загружает его из персистентного хранилища
// на старте и сохраняет best-effort после каждого изменения. Мутации
// полностью сериализованы мьютексом; стор никогда не изменяется частично.
type Store struct {
	mu        sync.RWMutex
	state     domain.StoreState
	persister Persister
	logger    Logger
	metrics   Metrics
}

// New создает стор с пустым состоянием (seed default)
func New(persister Persister, logger Logger, metrics Metrics) *Store {
	return &Store{
		state:     make(domain.StoreState),
		persister: persister,
		logger:    logger,
		metrics:   metrics,
	}
}

// LoadInitial загружает сохраненное состояние. Любая ошибка загрузки или
// разбора проглатывается: стор остается на пустом дефолте, ошибка только
// логируется и никогда не фатальна.
func (s *Store) LoadInitial(ctx context.Context) {
	state, err := s.persister.Load(ctx)
	if err != nil {
		if errors.Is(err, statestore.ErrStateNotFound) {
			s.logger.Info("Store: no persisted state, starting with empty calendar")
		} else {
			s.logger.Warn("Store: failed to load persisted state, falling back to default: %v", err)
		}
		return
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.logger.Info("Store: loaded persisted state with %d booked dates", len(state))
}

// Snapshot возвращает глубокую копию текущего состояния.
// Чтения никогда не мутируют стор.
func (s *Store) Snapshot() domain.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Book атомарно проверяет доступность и записывает бронирование
// store[dateKey][venue][slot] = event. Проверка и запись выполняются под
// одним мьютексом, поэтому результат проверки не может устареть к моменту
// записи. При конфликте возвращает вердикт доступности и ErrSlotConflict,
// оставляя состояние нетронутым.
//
// Персистентность best-effort: ошибка сохранения логируется и не
// откатывает уже зафиксированное бронирование.
func (s *Store) Book(ctx context.Context, dateKey, venue string, slot domain.Slot, event string) (domain.Availability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	availability := domain.CheckAvailability(s.state, dateKey, venue, slot)
	if !availability.Available {
		return availability, ErrSlotConflict
	}

	s.state = s.state.WithBooking(dateKey, venue, slot, event)

	if err := s.persister.Save(ctx, s.state); err != nil {
		s.logger.Error("Store: failed to persist state after booking (%s, %s, %s): %v",
			dateKey, venue, slot, err)
		if s.metrics != nil {
			s.metrics.IncPersistFailure()
		}
	}

	return availability, nil
}
