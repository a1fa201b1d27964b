package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-league/internal/domain/photo"
)

type photoTableModel struct {
	ID            int64          `db:"id"`
	CreatedAt     time.Time      `db:"created_at"`
	Name          string         `db:"name"`
	EventID       int64          `db:"event_id"`
	StorageBucket string         `db:"storage_bucket"`
	StoragePath   string         `db:"storage_path"`
	EventRefID    sql.NullInt64  `db:"event_ref_id"`
	EventName     sql.NullString `db:"event_name"`
}

type photoInsertModel struct {
	Name          string `db:"name"`
	EventID       int64  `db:"event_id"`
	StorageBucket string `db:"storage_bucket"`
	StoragePath   string `db:"storage_path"`
}

func photoFromRow(row photoTableModel) photo.Photo {
	out := photo.Photo{
		ID:            row.ID,
		CreatedAt:     row.CreatedAt.UTC(),
		Name:          row.Name,
		EventID:       row.EventID,
		StorageBucket: row.StorageBucket,
		StoragePath:   row.StoragePath,
	}
	if id, name, ok := nullRef(row.EventRefID, row.EventName); ok {
		out.Event = &photo.EventRef{ID: id, Name: name}
	}
	return out
}
