package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/series"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

const seriesTable = "series"

var seriesSelectColumns = []string{
	"id",
	"created_at",
	"name",
	"start_at",
	"end_at",
}

type SeriesRepository struct {
	db *sqlx.DB
}

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	query, args, err := qb.Select(seriesSelectColumns...).From(seriesTable).
		OrderBy("start_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select series query: %w", err)
	}

	var rows []seriesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeError("select series", err)
	}

	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, seriesFromRow(row))
	}
	return out, nil
}

func (r *SeriesRepository) Create(ctx context.Context, fields series.Fields) (series.Series, error) {
	query, args, err := qb.InsertModel(seriesTable, seriesInsertModel{
		Name:    fields.Name,
		StartAt: fields.StartAt,
		EndAt:   fields.EndAt,
	}, "RETURNING id, created_at, name, start_at, end_at")
	if err != nil {
		return series.Series{}, fmt.Errorf("build insert series query: %w", err)
	}

	var row seriesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return series.Series{}, storeError("insert series", err)
	}
	return seriesFromRow(row), nil
}

func (r *SeriesRepository) Update(ctx context.Context, id int64, patch series.Patch) (series.Series, error) {
	b := qb.Update(seriesTable)
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.StartAt != nil {
		b.Set("start_at", *patch.StartAt)
	}
	if patch.EndAt != nil {
		b.Set("end_at", *patch.EndAt)
	}
	query, args, err := b.Where(qb.Eq("id", id)).
		Suffix("RETURNING id, created_at, name, start_at, end_at").
		ToSQL()
	if err != nil {
		return series.Series{}, fmt.Errorf("build update series query: %w", err)
	}

	var row seriesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return series.Series{}, notFound(seriesTable, id)
		}
		return series.Series{}, storeError("update series", err)
	}
	return seriesFromRow(row), nil
}

func (r *SeriesRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, seriesTable, id)
}
