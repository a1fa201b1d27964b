package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

const photosTable = "photos"

var photoSelectColumns = []string{
	"ph.id",
	"ph.created_at",
	"ph.name",
	"ph.event_id",
	"ph.storage_bucket",
	"ph.storage_path",
	"e.id AS event_ref_id",
	"e.name AS event_name",
}

func photoSelectBuilder() *qb.SelectBuilder {
	return qb.Select(photoSelectColumns...).
		From("photos ph").
		LeftJoin("events e", "e.id = ph.event_id")
}

type PhotoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) List(ctx context.Context) ([]photo.Photo, error) {
	query, args, err := photoSelectBuilder().
		OrderBy("ph.created_at DESC", "ph.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select photos query: %w", err)
	}

	var rows []photoTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeError("select photos", err)
	}

	out := make([]photo.Photo, 0, len(rows))
	for _, row := range rows {
		out = append(out, photoFromRow(row))
	}
	return out, nil
}

func (r *PhotoRepository) Create(ctx context.Context, fields photo.Fields) (photo.Photo, error) {
	query, args, err := qb.InsertModel(photosTable, photoInsertModel{
		Name:          fields.Name,
		EventID:       fields.EventID,
		StorageBucket: fields.StorageBucket,
		StoragePath:   fields.StoragePath,
	}, "RETURNING id")
	if err != nil {
		return photo.Photo{}, fmt.Errorf("build insert photo query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return photo.Photo{}, storeError("insert photo", err)
	}
	return r.getByID(ctx, id)
}

func (r *PhotoRepository) Update(ctx context.Context, id int64, patch photo.Patch) (photo.Photo, error) {
	b := qb.Update(photosTable)
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.EventID != nil {
		b.Set("event_id", *patch.EventID)
	}
	if patch.StorageBucket != nil {
		b.Set("storage_bucket", *patch.StorageBucket)
	}
	if patch.StoragePath != nil {
		b.Set("storage_path", *patch.StoragePath)
	}
	query, args, err := b.Where(qb.Eq("id", id)).Suffix("RETURNING id").ToSQL()
	if err != nil {
		return photo.Photo{}, fmt.Errorf("build update photo query: %w", err)
	}

	if err := execReturningID(ctx, r.db, query, args); err != nil {
		if isNotFound(err) {
			return photo.Photo{}, notFound(photosTable, id)
		}
		return photo.Photo{}, storeError("update photo", err)
	}
	return r.getByID(ctx, id)
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, photosTable, id)
}

func (r *PhotoRepository) getByID(ctx context.Context, id int64) (photo.Photo, error) {
	query, args, err := photoSelectBuilder().Where(qb.Eq("ph.id", id)).ToSQL()
	if err != nil {
		return photo.Photo{}, fmt.Errorf("build get photo query: %w", err)
	}

	var row photoTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return photo.Photo{}, notFound(photosTable, id)
		}
		return photo.Photo{}, storeError("get photo", err)
	}
	return photoFromRow(row), nil
}
