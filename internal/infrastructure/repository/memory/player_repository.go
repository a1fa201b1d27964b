package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

const playersTable = "players"

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(r.store.players))
	for _, item := range r.store.players {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, fields player.Fields) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item := player.Player{
		ID:            r.store.nextID(playersTable),
		CreatedAt:     r.store.now().UTC(),
		Name:          fields.Name,
		GHINNo:        fields.GHINNo,
		HandicapIndex: fields.HandicapIndex,
	}
	r.store.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, id int64, patch player.Patch) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.players[id]
	if !ok {
		return player.Player{}, notFound(playersTable, id)
	}
	item = item.Apply(patch)
	r.store.players[id] = item
	return item, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[id]; !ok {
		return notFound(playersTable, id)
	}
	for _, res := range r.store.results {
		if res.PlayerID == id {
			return stillReferenced(playersTable, id, resultsTable)
		}
	}
	delete(r.store.players, id)
	return nil
}
