package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

const resultsTable = "results"

var resultSelectColumns = []string{
	"r.id",
	"r.created_at",
	"r.player_id",
	"r.event_id",
	"r.points",
	"p.id AS player_ref_id",
	"p.name AS player_name",
	"e.id AS event_ref_id",
	"e.name AS event_name",
}

func resultSelectBuilder() *qb.SelectBuilder {
	return qb.Select(resultSelectColumns...).
		From("results r").
		LeftJoin("players p", "p.id = r.player_id").
		LeftJoin("events e", "e.id = r.event_id")
}

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) List(ctx context.Context) ([]result.Result, error) {
	query, args, err := resultSelectBuilder().
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeError("select results", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, resultFromRow(row))
	}
	return out, nil
}

func (r *ResultRepository) Create(ctx context.Context, fields result.Fields) (result.Result, error) {
	query, args, err := qb.InsertModel(resultsTable, resultInsertModel{
		PlayerID: fields.PlayerID,
		EventID:  fields.EventID,
		Points:   fields.Points,
	}, "RETURNING id")
	if err != nil {
		return result.Result{}, fmt.Errorf("build insert result query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return result.Result{}, storeError("insert result", err)
	}
	return r.getByID(ctx, id)
}

func (r *ResultRepository) Update(ctx context.Context, id int64, patch result.Patch) (result.Result, error) {
	b := qb.Update(resultsTable)
	if patch.PlayerID != nil {
		b.Set("player_id", *patch.PlayerID)
	}
	if patch.EventID != nil {
		b.Set("event_id", *patch.EventID)
	}
	if patch.Points != nil {
		b.Set("points", *patch.Points)
	}
	query, args, err := b.Where(qb.Eq("id", id)).Suffix("RETURNING id").ToSQL()
	if err != nil {
		return result.Result{}, fmt.Errorf("build update result query: %w", err)
	}

	if err := execReturningID(ctx, r.db, query, args); err != nil {
		if isNotFound(err) {
			return result.Result{}, notFound(resultsTable, id)
		}
		return result.Result{}, storeError("update result", err)
	}
	return r.getByID(ctx, id)
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, resultsTable, id)
}

func (r *ResultRepository) getByID(ctx context.Context, id int64) (result.Result, error) {
	query, args, err := resultSelectBuilder().Where(qb.Eq("r.id", id)).ToSQL()
	if err != nil {
		return result.Result{}, fmt.Errorf("build get result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, notFound(resultsTable, id)
		}
		return result.Result{}, storeError("get result", err)
	}
	return resultFromRow(row), nil
}
