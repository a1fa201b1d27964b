package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func storeError(op string, err error) error {
	switch pqCode(err) {
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s: foreign key violation: %w", usecase.ErrStore, op, err)
	case pqCheckViolation:
		return fmt.Errorf("%w: %s: check constraint violation: %w", usecase.ErrStore, op, err)
	}
	return fmt.Errorf("%w: %s: %w", usecase.ErrStore, op, err)
}

func notFound(table string, id int64) error {
	return fmt.Errorf("%w: %s id=%d", usecase.ErrNotFound, table, id)
}

func nullRef(id sql.NullInt64, name sql.NullString) (int64, string, bool) {
	if !id.Valid {
		return 0, "", false
	}
	return id.Int64, name.String, true
}

// execReturningID runs a statement ending in RETURNING id. sql.ErrNoRows means
// no row matched.
func execReturningID(ctx context.Context, db *sqlx.DB, query string, args []any) error {
	var id int64
	return db.GetContext(ctx, &id, query, args...)
}

func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64) error {
	query, args, err := qb.DeleteFrom(table).
		Where(qb.Eq("id", id)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	if err := execReturningID(ctx, db, query, args); err != nil {
		if isNotFound(err) {
			return notFound(table, id)
		}
		return storeError("delete "+table, err)
	}
	return nil
}
