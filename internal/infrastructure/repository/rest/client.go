package rest

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// TableClient is the subset of supabase.Client the repositories use.
type TableClient interface {
	Select(ctx context.Context, table string, q supabase.Query, target any) error
	Insert(ctx context.Context, table string, q supabase.Query, row any, target any) error
	Update(ctx context.Context, table string, q supabase.Query, patch any, target any) error
	Delete(ctx context.Context, table string, q supabase.Query, target any) error
}

var errEmptyRepresentation = crerr.New("store returned no row")

var _ TableClient = (*supabase.Client)(nil)

// idRef is the joined {id,name} projection of a referenced row.
type idRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

var idNameColumns = []string{"id", "name"}

func byID(q supabase.Query, id int64) supabase.Query {
	return q.Where(supabase.Eq("id", id))
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", usecase.ErrStore, op, err)
}

func notFound(table string, id int64) error {
	return fmt.Errorf("%w: %s id=%d", usecase.ErrNotFound, table, id)
}

// single picks the one row a by-id mutation returns.
func single[T any](rows []T, table string, id int64) (T, error) {
	if len(rows) == 0 {
		var zero T
		return zero, notFound(table, id)
	}
	return rows[0], nil
}
