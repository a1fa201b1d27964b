package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/series"
)

const seriesTable = "series"

type SeriesRepository struct {
	store *Store
}

func NewSeriesRepository(store *Store) *SeriesRepository {
	return &SeriesRepository{store: store}
}

func (r *SeriesRepository) List(_ context.Context) ([]series.Series, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]series.Series, 0, len(r.store.series))
	for _, item := range r.store.series {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(out[i].StartAt, out[j].StartAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *SeriesRepository) Create(_ context.Context, fields series.Fields) (series.Series, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item := series.Series{
		ID:        r.store.nextID(seriesTable),
		CreatedAt: r.store.now().UTC(),
		Name:      fields.Name,
		StartAt:   fields.StartAt,
		EndAt:     fields.EndAt,
	}
	r.store.series[item.ID] = item
	return item, nil
}

func (r *SeriesRepository) Update(_ context.Context, id int64, patch series.Patch) (series.Series, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.series[id]
	if !ok {
		return series.Series{}, notFound(seriesTable, id)
	}
	item = item.Apply(patch)
	if item.EndAt.Before(item.StartAt) {
		return series.Series{}, endBeforeStart(seriesTable, id)
	}
	r.store.series[id] = item
	return item, nil
}

func (r *SeriesRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.series[id]; !ok {
		return notFound(seriesTable, id)
	}
	for _, ev := range r.store.events {
		if ev.SeriesID == id {
			return stillReferenced(seriesTable, id, eventsTable)
		}
	}
	delete(r.store.series, id)
	return nil
}
