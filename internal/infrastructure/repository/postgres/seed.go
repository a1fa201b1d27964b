package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed inserts the demo league when the series table is empty.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM series`); err != nil {
		return fmt.Errorf("count series for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	demo := memory.SeedDemoLeague()

	seriesID, err := insertSeedRow(ctx, tx, "series", `
INSERT INTO series (name, start_at, end_at)
VALUES (:name, :start_at, :end_at)
RETURNING id`, map[string]any{
		"name":     demo.Series.Name,
		"start_at": demo.Series.StartAt.UTC(),
		"end_at":   demo.Series.EndAt.UTC(),
	})
	if err != nil {
		return err
	}

	eventID, err := insertSeedRow(ctx, tx, "event", `
INSERT INTO events (name, course_name, start_at, end_at, series_id)
VALUES (:name, :course_name, :start_at, :end_at, :series_id)
RETURNING id`, map[string]any{
		"name":        demo.Event.Name,
		"course_name": demo.Event.CourseName,
		"start_at":    demo.Event.StartAt.UTC(),
		"end_at":      demo.Event.EndAt.UTC(),
		"series_id":   seriesID,
	})
	if err != nil {
		return err
	}

	for _, entry := range demo.Entries {
		playerID, err := insertSeedRow(ctx, tx, "player "+entry.Player.Name, `
INSERT INTO players (name, ghin_no, handicap_index)
VALUES (:name, :ghin_no, :handicap_index)
RETURNING id`, map[string]any{
			"name":           entry.Player.Name,
			"ghin_no":        entry.Player.GHINNo,
			"handicap_index": entry.Player.HandicapIndex,
		})
		if err != nil {
			return err
		}

		if _, err := insertSeedRow(ctx, tx, "result "+entry.Player.Name, `
INSERT INTO results (player_id, event_id, points)
VALUES (:player_id, :event_id, :points)
RETURNING id`, map[string]any{
			"player_id": playerID,
			"event_id":  eventID,
			"points":    entry.Points,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func insertSeedRow(ctx context.Context, tx *sqlx.Tx, label, query string, params map[string]any) (int64, error) {
	sqlQuery, args, err := sqlx.Named(query, params)
	if err != nil {
		return 0, fmt.Errorf("bind seed %s query: %w", label, err)
	}
	sqlQuery = tx.Rebind(sqlQuery)

	var id int64
	if err := tx.GetContext(ctx, &id, sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("seed %s: %w", label, err)
	}
	return id, nil
}
