package statestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/sqlbuilder"
)

// schema таблица-хранилище: единственный сериализованный блоб под
// фиксированным ключом
const schema = `
CREATE TABLE IF NOT EXISTS calendar_state (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Repository репозиторий для сохранения и загрузки состояния календаря.
// Весь стор сериализуется в один JSON блоб: date -> venue -> slot -> event.
type Repository struct {
	db  DBExecutor
	key string
}

// NewRepository создает новый экземпляр репозитория состояния
func NewRepository(db DBExecutor, key string) *Repository {
	return &Repository{db: db, key: key}
}

// InitSchema создает таблицу хранилища, если её ещё нет
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: InitSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Load загружает сохраненное состояние из-под фиксированного ключа.
// Возвращает ErrStateNotFound, если под ключом ничего нет, и
// ErrDecodeState, если блоб не декодируется в валидное состояние.
func (r *Repository) Load(ctx context.Context) (domain.StoreState, error) {
	query, args, err := sqlbuilder.Select("payload").
		From("calendar_state").
		Where(squirrel.Eq{"key": r.key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload: %v", ErrScanRow, err)
	}

	var state domain.StoreState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal payload: %v", ErrDecodeState, err)
	}
	if state == nil {
		state = make(domain.StoreState)
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: Load - invalid persisted state: %v", ErrDecodeState, err)
	}

	return state, nil
}

// Save сохраняет состояние под фиксированным ключом (upsert)
func (r *Repository) Save(ctx context.Context, state domain.StoreState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal state: %v", ErrEncodeState, err)
	}

	query, args, err := sqlbuilder.Insert("calendar_state").
		Columns("key", "payload").
		Values(r.key, string(payload)).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
