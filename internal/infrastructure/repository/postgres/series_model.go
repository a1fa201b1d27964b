package postgres

import (
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/series"
)

type seriesTableModel struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Name      string    `db:"name"`
	StartAt   time.Time `db:"start_at"`
	EndAt     time.Time `db:"end_at"`
}

type seriesInsertModel struct {
	Name    string    `db:"name"`
	StartAt time.Time `db:"start_at"`
	EndAt   time.Time `db:"end_at"`
}

func seriesFromRow(row seriesTableModel) series.Series {
	return series.Series{
		ID:        row.ID,
		CreatedAt: row.CreatedAt.UTC(),
		Name:      row.Name,
		StartAt:   row.StartAt.UTC(),
		EndAt:     row.EndAt.UTC(),
	}
}
