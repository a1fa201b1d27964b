package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/result"
)

type resultTableModel struct {
	ID          int64          `db:"id"`
	CreatedAt   time.Time      `db:"created_at"`
	PlayerID    int64          `db:"player_id"`
	EventID     int64          `db:"event_id"`
	Points      int            `db:"points"`
	PlayerRefID sql.NullInt64  `db:"player_ref_id"`
	PlayerName  sql.NullString `db:"player_name"`
	EventRefID  sql.NullInt64  `db:"event_ref_id"`
	EventName   sql.NullString `db:"event_name"`
}

type resultInsertModel struct {
	PlayerID int64 `db:"player_id"`
	EventID  int64 `db:"event_id"`
	Points   int   `db:"points"`
}

func resultFromRow(row resultTableModel) result.Result {
	out := result.Result{
		ID:        row.ID,
		CreatedAt: row.CreatedAt.UTC(),
		PlayerID:  row.PlayerID,
		EventID:   row.EventID,
		Points:    row.Points,
	}
	if id, name, ok := nullRef(row.PlayerRefID, row.PlayerName); ok {
		out.Player = &result.PlayerRef{ID: id, Name: name}
	}
	if id, name, ok := nullRef(row.EventRefID, row.EventName); ok {
		out.Event = &result.EventRef{ID: id, Name: name}
	}
	return out
}
