package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

const playersTable = "players"

var playerSelectColumns = []string{
	"id",
	"created_at",
	"name",
	"ghin_no",
	"handicap_index",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		OrderBy("name ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeError("select players", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, fields player.Fields) (player.Player, error) {
	query, args, err := qb.InsertModel(playersTable, playerInsertModel{
		Name:          fields.Name,
		GHINNo:        fields.GHINNo,
		HandicapIndex: fields.HandicapIndex,
	}, "RETURNING id, created_at, name, ghin_no, handicap_index")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, storeError("insert player", err)
	}
	return playerFromRow(row), nil
}

func playerUpdateBuilder(id int64, patch player.Patch) *qb.UpdateBuilder {
	b := qb.Update(playersTable)
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.GHINNo != nil {
		b.Set("ghin_no", *patch.GHINNo)
	}
	if patch.HandicapIndex != nil {
		b.Set("handicap_index", *patch.HandicapIndex)
	}
	return b.Where(qb.Eq("id", id)).Suffix("RETURNING id")
}

func (r *PlayerRepository) Update(ctx context.Context, id int64, patch player.Patch) (player.Player, error) {
	query, args, err := playerUpdateBuilder(id, patch).ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}
	if err := execReturningID(ctx, r.db, query, args); err != nil {
		if isNotFound(err) {
			return player.Player{}, notFound(playersTable, id)
		}
		return player.Player{}, storeError("update player", err)
	}
	return r.getByID(ctx, id)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, playersTable, id)
}

func (r *PlayerRepository) getByID(ctx context.Context, id int64) (player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, notFound(playersTable, id)
		}
		return player.Player{}, storeError("get player", err)
	}
	return playerFromRow(row), nil
}
