package postgres

import (
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

type playerTableModel struct {
	ID            int64     `db:"id"`
	CreatedAt     time.Time `db:"created_at"`
	Name          string    `db:"name"`
	GHINNo        string    `db:"ghin_no"`
	HandicapIndex float64   `db:"handicap_index"`
}

type playerInsertModel struct {
	Name          string  `db:"name"`
	GHINNo        string  `db:"ghin_no"`
	HandicapIndex float64 `db:"handicap_index"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:            row.ID,
		CreatedAt:     row.CreatedAt.UTC(),
		Name:          row.Name,
		GHINNo:        row.GHINNo,
		HandicapIndex: row.HandicapIndex,
	}
}
