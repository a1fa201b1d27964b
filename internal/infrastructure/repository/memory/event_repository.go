package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/event"
)

const eventsTable = "events"

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

// withSeries must be called with mu held.
func (r *EventRepository) withSeries(item event.Event) event.Event {
	item.Series = nil
	if s, ok := r.store.series[item.SeriesID]; ok {
		item.Series = &event.SeriesRef{ID: s.ID, Name: s.Name}
	}
	return item
}

func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]event.Event, 0, len(r.store.events))
	for _, item := range r.store.events {
		out = append(out, r.withSeries(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(out[i].StartAt, out[j].StartAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *EventRepository) Create(_ context.Context, fields event.Fields) (event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.series[fields.SeriesID]; !ok {
		return event.Event{}, foreignKeyViolation(eventsTable, "series_id", fields.SeriesID)
	}

	item := event.Event{
		ID:         r.store.nextID(eventsTable),
		CreatedAt:  r.store.now().UTC(),
		Name:       fields.Name,
		CourseName: fields.CourseName,
		StartAt:    fields.StartAt,
		EndAt:      fields.EndAt,
		SeriesID:   fields.SeriesID,
	}
	r.store.events[item.ID] = item
	return r.withSeries(item), nil
}

func (r *EventRepository) Update(_ context.Context, id int64, patch event.Patch) (event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.events[id]
	if !ok {
		return event.Event{}, notFound(eventsTable, id)
	}
	if patch.SeriesID != nil {
		if _, ok := r.store.series[*patch.SeriesID]; !ok {
			return event.Event{}, foreignKeyViolation(eventsTable, "series_id", *patch.SeriesID)
		}
	}
	item = item.Apply(patch)
	if item.EndAt.Before(item.StartAt) {
		return event.Event{}, endBeforeStart(eventsTable, id)
	}
	item.Series = nil
	r.store.events[id] = item
	return r.withSeries(item), nil
}

func (r *EventRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[id]; !ok {
		return notFound(eventsTable, id)
	}
	for _, res := range r.store.results {
		if res.EventID == id {
			return stillReferenced(eventsTable, id, resultsTable)
		}
	}
	for _, ph := range r.store.photos {
		if ph.EventID == id {
			return stillReferenced(eventsTable, id, photosTable)
		}
	}
	delete(r.store.events, id)
	return nil
}
