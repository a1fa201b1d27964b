package rest

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/series"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
)

const seriesTable = "series"

var seriesListQuery = supabase.Query{Order: []supabase.Order{supabase.Desc("start_at")}}

type seriesRow struct {
	ID        int64         `json:"id"`
	CreatedAt supabase.Time `json:"created_at"`
	Name      string        `json:"name"`
	StartAt   supabase.Time `json:"start_at"`
	EndAt     supabase.Time `json:"end_at"`
}

type seriesInsert struct {
	Name    string        `json:"name"`
	StartAt supabase.Time `json:"start_at"`
	EndAt   supabase.Time `json:"end_at"`
}

func (r seriesRow) toDomain() series.Series {
	return series.Series{
		ID:        r.ID,
		CreatedAt: r.CreatedAt.Time,
		Name:      r.Name,
		StartAt:   r.StartAt.Time,
		EndAt:     r.EndAt.Time,
	}
}

func seriesPatchBody(patch series.Patch) map[string]any {
	body := make(map[string]any, 3)
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.StartAt != nil {
		body["start_at"] = supabase.NewTime(*patch.StartAt)
	}
	if patch.EndAt != nil {
		body["end_at"] = supabase.NewTime(*patch.EndAt)
	}
	return body
}

type SeriesRepository struct {
	client TableClient
}

func NewSeriesRepository(client TableClient) *SeriesRepository {
	return &SeriesRepository{client: client}
}

func (r *SeriesRepository) List(ctx context.Context) ([]series.Series, error) {
	var rows []seriesRow
	if err := r.client.Select(ctx, seriesTable, seriesListQuery, &rows); err != nil {
		return nil, storeError("select series", err)
	}

	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeriesRepository) Create(ctx context.Context, fields series.Fields) (series.Series, error) {
	insert := seriesInsert{
		Name:    fields.Name,
		StartAt: supabase.NewTime(fields.StartAt),
		EndAt:   supabase.NewTime(fields.EndAt),
	}

	var rows []seriesRow
	if err := r.client.Insert(ctx, seriesTable, supabase.Query{}, insert, &rows); err != nil {
		return series.Series{}, storeError("insert series", err)
	}
	if len(rows) == 0 {
		return series.Series{}, storeError("insert series", errEmptyRepresentation)
	}
	return rows[0].toDomain(), nil
}

func (r *SeriesRepository) Update(ctx context.Context, id int64, patch series.Patch) (series.Series, error) {
	var rows []seriesRow
	if err := r.client.Update(ctx, seriesTable, byID(supabase.Query{}, id), seriesPatchBody(patch), &rows); err != nil {
		return series.Series{}, storeError("update series", err)
	}
	row, err := single(rows, seriesTable, id)
	if err != nil {
		return series.Series{}, err
	}
	return row.toDomain(), nil
}

func (r *SeriesRepository) Delete(ctx context.Context, id int64) error {
	var rows []idRef
	if err := r.client.Delete(ctx, seriesTable, byID(supabase.Query{Columns: []string{"id"}}, id), &rows); err != nil {
		return storeError("delete series", err)
	}
	if len(rows) == 0 {
		return notFound(seriesTable, id)
	}
	return nil
}
