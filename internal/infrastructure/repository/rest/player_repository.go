package rest

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
)

const playersTable = "players"

var playerListQuery = supabase.Query{Order: []supabase.Order{supabase.Asc("name")}}

type playerRow struct {
	ID            int64         `json:"id"`
	CreatedAt     supabase.Time `json:"created_at"`
	Name          string        `json:"name"`
	GHINNo        string        `json:"ghin_no"`
	HandicapIndex float64       `json:"handicap_index"`
}

type playerInsert struct {
	Name          string  `json:"name"`
	GHINNo        string  `json:"ghin_no"`
	HandicapIndex float64 `json:"handicap_index"`
}

func (r playerRow) toDomain() player.Player {
	return player.Player{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.Time,
		Name:          r.Name,
		GHINNo:        r.GHINNo,
		HandicapIndex: r.HandicapIndex,
	}
}

func playerPatchBody(patch player.Patch) map[string]any {
	body := make(map[string]any, 3)
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.GHINNo != nil {
		body["ghin_no"] = *patch.GHINNo
	}
	if patch.HandicapIndex != nil {
		body["handicap_index"] = *patch.HandicapIndex
	}
	return body
}

type PlayerRepository struct {
	client TableClient
}

func NewPlayerRepository(client TableClient) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	var rows []playerRow
	if err := r.client.Select(ctx, playersTable, playerListQuery, &rows); err != nil {
		return nil, storeError("select players", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, fields player.Fields) (player.Player, error) {
	insert := playerInsert{
		Name:          fields.Name,
		GHINNo:        fields.GHINNo,
		HandicapIndex: fields.HandicapIndex,
	}

	var rows []playerRow
	if err := r.client.Insert(ctx, playersTable, supabase.Query{}, insert, &rows); err != nil {
		return player.Player{}, storeError("insert player", err)
	}
	if len(rows) == 0 {
		return player.Player{}, storeError("insert player", errEmptyRepresentation)
	}
	return rows[0].toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, id int64, patch player.Patch) (player.Player, error) {
	var rows []playerRow
	if err := r.client.Update(ctx, playersTable, byID(supabase.Query{}, id), playerPatchBody(patch), &rows); err != nil {
		return player.Player{}, storeError("update player", err)
	}
	row, err := single(rows, playersTable, id)
	if err != nil {
		return player.Player{}, err
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	var rows []idRef
	if err := r.client.Delete(ctx, playersTable, byID(supabase.Query{Columns: []string{"id"}}, id), &rows); err != nil {
		return storeError("delete player", err)
	}
	if len(rows) == 0 {
		return notFound(playersTable, id)
	}
	return nil
}
