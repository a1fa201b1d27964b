package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/result"
)

const resultsTable = "results"

type ResultRepository struct {
	store *Store
}

func NewResultRepository(store *Store) *ResultRepository {
	return &ResultRepository{store: store}
}

// withRefs must be called with mu held.
func (r *ResultRepository) withRefs(item result.Result) result.Result {
	item.Player, item.Event = nil, nil
	if p, ok := r.store.players[item.PlayerID]; ok {
		item.Player = &result.PlayerRef{ID: p.ID, Name: p.Name}
	}
	if e, ok := r.store.events[item.EventID]; ok {
		item.Event = &result.EventRef{ID: e.ID, Name: e.Name}
	}
	return item
}

// checkRefs must be called with mu held.
func (r *ResultRepository) checkRefs(playerID, eventID int64) error {
	if _, ok := r.store.players[playerID]; !ok {
		return foreignKeyViolation(resultsTable, "player_id", playerID)
	}
	if _, ok := r.store.events[eventID]; !ok {
		return foreignKeyViolation(resultsTable, "event_id", eventID)
	}
	return nil
}

func (r *ResultRepository) List(_ context.Context) ([]result.Result, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]result.Result, 0, len(r.store.results))
	for _, item := range r.store.results {
		out = append(out, r.withRefs(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *ResultRepository) Create(_ context.Context, fields result.Fields) (result.Result, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkRefs(fields.PlayerID, fields.EventID); err != nil {
		return result.Result{}, err
	}

	item := result.Result{
		ID:        r.store.nextID(resultsTable),
		CreatedAt: r.store.now().UTC(),
		PlayerID:  fields.PlayerID,
		EventID:   fields.EventID,
		Points:    fields.Points,
	}
	r.store.results[item.ID] = item
	return r.withRefs(item), nil
}

func (r *ResultRepository) Update(_ context.Context, id int64, patch result.Patch) (result.Result, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.results[id]
	if !ok {
		return result.Result{}, notFound(resultsTable, id)
	}
	item = item.Apply(patch)
	if err := r.checkRefs(item.PlayerID, item.EventID); err != nil {
		return result.Result{}, err
	}
	r.store.results[id] = item
	return r.withRefs(item), nil
}

func (r *ResultRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.results[id]; !ok {
		return notFound(resultsTable, id)
	}
	delete(r.store.results, id)
	return nil
}
