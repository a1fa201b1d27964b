package rest

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
)

const photosTable = "photos"

var photoProjection = supabase.Query{
	Embeds: []supabase.Embed{{Alias: "event", ForeignKey: "event_id", Columns: idNameColumns}},
}

var photoListQuery = supabase.Query{
	Embeds: photoProjection.Embeds,
	Order:  []supabase.Order{supabase.Desc("created_at")},
}

type photoRow struct {
	ID            int64         `json:"id"`
	CreatedAt     supabase.Time `json:"created_at"`
	Name          string        `json:"name"`
	EventID       int64         `json:"event_id"`
	StorageBucket string        `json:"storage_bucket"`
	StoragePath   string        `json:"storage_path"`
	Event         *idRef        `json:"event"`
}

type photoInsert struct {
	Name          string `json:"name"`
	EventID       int64  `json:"event_id"`
	StorageBucket string `json:"storage_bucket"`
	StoragePath   string `json:"storage_path"`
}

func (r photoRow) toDomain() photo.Photo {
	out := photo.Photo{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.Time,
		Name:          r.Name,
		EventID:       r.EventID,
		StorageBucket: r.StorageBucket,
		StoragePath:   r.StoragePath,
	}
	if r.Event != nil {
		out.Event = &photo.EventRef{ID: r.Event.ID, Name: r.Event.Name}
	}
	return out
}

func photoPatchBody(patch photo.Patch) map[string]any {
	body := make(map[string]any, 4)
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.EventID != nil {
		body["event_id"] = *patch.EventID
	}
	if patch.StorageBucket != nil {
		body["storage_bucket"] = *patch.StorageBucket
	}
	if patch.StoragePath != nil {
		body["storage_path"] = *patch.StoragePath
	}
	return body
}

type PhotoRepository struct {
	client TableClient
}

func NewPhotoRepository(client TableClient) *PhotoRepository {
	return &PhotoRepository{client: client}
}

func (r *PhotoRepository) List(ctx context.Context) ([]photo.Photo, error) {
	var rows []photoRow
	if err := r.client.Select(ctx, photosTable, photoListQuery, &rows); err != nil {
		return nil, storeError("select photos", err)
	}

	out := make([]photo.Photo, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PhotoRepository) Create(ctx context.Context, fields photo.Fields) (photo.Photo, error) {
	insert := photoInsert{
		Name:          fields.Name,
		EventID:       fields.EventID,
		StorageBucket: fields.StorageBucket,
		StoragePath:   fields.StoragePath,
	}

	var rows []photoRow
	if err := r.client.Insert(ctx, photosTable, photoProjection, insert, &rows); err != nil {
		return photo.Photo{}, storeError("insert photo", err)
	}
	if len(rows) == 0 {
		return photo.Photo{}, storeError("insert photo", errEmptyRepresentation)
	}
	return rows[0].toDomain(), nil
}

func (r *PhotoRepository) Update(ctx context.Context, id int64, patch photo.Patch) (photo.Photo, error) {
	var rows []photoRow
	if err := r.client.Update(ctx, photosTable, byID(photoProjection, id), photoPatchBody(patch), &rows); err != nil {
		return photo.Photo{}, storeError("update photo", err)
	}
	row, err := single(rows, photosTable, id)
	if err != nil {
		return photo.Photo{}, err
	}
	return row.toDomain(), nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	var rows []idRef
	if err := r.client.Delete(ctx, photosTable, byID(supabase.Query{Columns: []string{"id"}}, id), &rows); err != nil {
		return storeError("delete photo", err)
	}
	if len(rows) == 0 {
		return notFound(photosTable, id)
	}
	return nil
}
