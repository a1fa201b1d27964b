package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/golf-league/internal/domain/photo"
)

const photosTable = "photos"

type PhotoRepository struct {
	store *Store
}

func NewPhotoRepository(store *Store) *PhotoRepository {
	return &PhotoRepository{store: store}
}

// withEvent must be called with mu held.
func (r *PhotoRepository) withEvent(item photo.Photo) photo.Photo {
	item.Event = nil
	if e, ok := r.store.events[item.EventID]; ok {
		item.Event = &photo.EventRef{ID: e.ID, Name: e.Name}
	}
	return item
}

func (r *PhotoRepository) List(_ context.Context) ([]photo.Photo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]photo.Photo, 0, len(r.store.photos))
	for _, item := range r.store.photos {
		out = append(out, r.withEvent(item))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *PhotoRepository) Create(_ context.Context, fields photo.Fields) (photo.Photo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[fields.EventID]; !ok {
		return photo.Photo{}, foreignKeyViolation(photosTable, "event_id", fields.EventID)
	}

	item := photo.Photo{
		ID:            r.store.nextID(photosTable),
		CreatedAt:     r.store.now().UTC(),
		Name:          fields.Name,
		EventID:       fields.EventID,
		StorageBucket: fields.StorageBucket,
		StoragePath:   fields.StoragePath,
	}
	r.store.photos[item.ID] = item
	return r.withEvent(item), nil
}

func (r *PhotoRepository) Update(_ context.Context, id int64, patch photo.Patch) (photo.Photo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.photos[id]
	if !ok {
		return photo.Photo{}, notFound(photosTable, id)
	}
	if patch.EventID != nil {
		if _, ok := r.store.events[*patch.EventID]; !ok {
			return photo.Photo{}, foreignKeyViolation(photosTable, "event_id", *patch.EventID)
		}
	}
	item = item.Apply(patch)
	r.store.photos[id] = item
	return r.withEvent(item), nil
}

func (r *PhotoRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.photos[id]; !ok {
		return notFound(photosTable, id)
	}
	delete(r.store.photos, id)
	return nil
}
