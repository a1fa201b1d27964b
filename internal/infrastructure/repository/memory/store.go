package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/domain/series"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// Store keeps the five league tables in process. It assigns ids and creation
// timestamps and enforces foreign keys the way the hosted store does. One
// lock guards all tables since joins and key checks span them.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	seq     map[string]int64
	players map[int64]player.Player
	series  map[int64]series.Series
	events  map[int64]event.Event
	results map[int64]result.Result
	photos  map[int64]photo.Photo
}

func NewStore() *Store {
	return &Store{
		now:     time.Now,
		seq:     make(map[string]int64, 5),
		players: make(map[int64]player.Player),
		series:  make(map[int64]series.Series),
		events:  make(map[int64]event.Event),
		results: make(map[int64]result.Result),
		photos:  make(map[int64]photo.Photo),
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func notFound(table string, id int64) error {
	return fmt.Errorf("%w: %s id=%d", usecase.ErrNotFound, table, id)
}

func foreignKeyViolation(table, column string, id int64) error {
	return fmt.Errorf("%w: insert or update on %s violates foreign key %s=%d", usecase.ErrStore, table, column, id)
}

func endBeforeStart(table string, id int64) error {
	return fmt.Errorf("%w: update on %s id=%d violates check end_at >= start_at", usecase.ErrStore, table, id)
}

func stillReferenced(table string, id int64, by string) error {
	return fmt.Errorf("%w: %s id=%d is still referenced from %s", usecase.ErrStore, table, id, by)
}

func newerFirst(a, b time.Time, idA, idB int64) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return idA > idB
}
