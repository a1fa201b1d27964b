package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/event"
)

type eventTableModel struct {
	ID          int64          `db:"id"`
	CreatedAt   time.Time      `db:"created_at"`
	Name        string         `db:"name"`
	CourseName  string         `db:"course_name"`
	StartAt     time.Time      `db:"start_at"`
	EndAt       time.Time      `db:"end_at"`
	SeriesID    int64          `db:"series_id"`
	SeriesRefID sql.NullInt64  `db:"series_ref_id"`
	SeriesName  sql.NullString `db:"series_name"`
}

type eventInsertModel struct {
	Name       string    `db:"name"`
	CourseName string    `db:"course_name"`
	StartAt    time.Time `db:"start_at"`
	EndAt      time.Time `db:"end_at"`
	SeriesID   int64     `db:"series_id"`
}

func eventFromRow(row eventTableModel) event.Event {
	out := event.Event{
		ID:         row.ID,
		CreatedAt:  row.CreatedAt.UTC(),
		Name:       row.Name,
		CourseName: row.CourseName,
		StartAt:    row.StartAt.UTC(),
		EndAt:      row.EndAt.UTC(),
		SeriesID:   row.SeriesID,
	}
	if id, name, ok := nullRef(row.SeriesRefID, row.SeriesName); ok {
		out.Series = &event.SeriesRef{ID: id, Name: name}
	}
	return out
}
