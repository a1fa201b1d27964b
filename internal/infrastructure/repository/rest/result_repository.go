package rest

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
)

const resultsTable = "results"

var resultProjection = supabase.Query{
	Embeds: []supabase.Embed{
		{Alias: "player", ForeignKey: "player_id", Columns: idNameColumns},
		{Alias: "event", ForeignKey: "event_id", Columns: idNameColumns},
	},
}

var resultListQuery = supabase.Query{
	Embeds: resultProjection.Embeds,
	Order:  []supabase.Order{supabase.Desc("created_at")},
}

type resultRow struct {
	ID        int64         `json:"id"`
	CreatedAt supabase.Time `json:"created_at"`
	PlayerID  int64         `json:"player_id"`
	EventID   int64         `json:"event_id"`
	Points    int           `json:"points"`
	Player    *idRef        `json:"player"`
	Event     *idRef        `json:"event"`
}

type resultInsert struct {
	PlayerID int64 `json:"player_id"`
	EventID  int64 `json:"event_id"`
	Points   int   `json:"points"`
}

func (r resultRow) toDomain() result.Result {
	out := result.Result{
		ID:        r.ID,
		CreatedAt: r.CreatedAt.Time,
		PlayerID:  r.PlayerID,
		EventID:   r.EventID,
		Points:    r.Points,
	}
	if r.Player != nil {
		out.Player = &result.PlayerRef{ID: r.Player.ID, Name: r.Player.Name}
	}
	if r.Event != nil {
		out.Event = &result.EventRef{ID: r.Event.ID, Name: r.Event.Name}
	}
	return out
}

func resultPatchBody(patch result.Patch) map[string]any {
	body := make(map[string]any, 3)
	if patch.PlayerID != nil {
		body["player_id"] = *patch.PlayerID
	}
	if patch.EventID != nil {
		body["event_id"] = *patch.EventID
	}
	if patch.Points != nil {
		body["points"] = *patch.Points
	}
	return body
}

type ResultRepository struct {
	client TableClient
}

func NewResultRepository(client TableClient) *ResultRepository {
	return &ResultRepository{client: client}
}

func (r *ResultRepository) List(ctx context.Context) ([]result.Result, error) {
	var rows []resultRow
	if err := r.client.Select(ctx, resultsTable, resultListQuery, &rows); err != nil {
		return nil, storeError("select results", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ResultRepository) Create(ctx context.Context, fields result.Fields) (result.Result, error) {
	insert := resultInsert{
		PlayerID: fields.PlayerID,
		EventID:  fields.EventID,
		Points:   fields.Points,
	}

	var rows []resultRow
	if err := r.client.Insert(ctx, resultsTable, resultProjection, insert, &rows); err != nil {
		return result.Result{}, storeError("insert result", err)
	}
	if len(rows) == 0 {
		return result.Result{}, storeError("insert result", errEmptyRepresentation)
	}
	return rows[0].toDomain(), nil
}

func (r *ResultRepository) Update(ctx context.Context, id int64, patch result.Patch) (result.Result, error) {
	var rows []resultRow
	if err := r.client.Update(ctx, resultsTable, byID(resultProjection, id), resultPatchBody(patch), &rows); err != nil {
		return result.Result{}, storeError("update result", err)
	}
	row, err := single(rows, resultsTable, id)
	if err != nil {
		return result.Result{}, err
	}
	return row.toDomain(), nil
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	var rows []idRef
	if err := r.client.Delete(ctx, resultsTable, byID(supabase.Query{Columns: []string{"id"}}, id), &rows); err != nil {
		return storeError("delete result", err)
	}
	if len(rows) == 0 {
		return notFound(resultsTable, id)
	}
	return nil
}
