package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(sql.ErrNoRows))
	assert.True(t, isNotFound(fmt.Errorf("get event: %w", sql.ErrNoRows)))
	assert.False(t, isNotFound(errors.New("pq: relation events does not exist")))
}

func TestStoreError_ClassifiesPQErrors(t *testing.T) {
	err := storeError("insert event", &pq.Error{Code: pqForeignKeyViolation, Message: "violates foreign key"})
	require.ErrorIs(t, err, usecase.ErrStore)
	assert.Contains(t, err.Error(), "foreign key violation")

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)

	plain := storeError("select players", errors.New("connection reset"))
	require.ErrorIs(t, plain, usecase.ErrStore)
	assert.NotContains(t, plain.Error(), "violation")
}

func TestNullRef(t *testing.T) {
	_, _, ok := nullRef(sql.NullInt64{}, sql.NullString{})
	assert.False(t, ok)

	id, name, ok := nullRef(sql.NullInt64{Int64: 4, Valid: true}, sql.NullString{String: "Spring 2024", Valid: true})
	require.True(t, ok)
	assert.EqualValues(t, 4, id)
	assert.Equal(t, "Spring 2024", name)
}

func TestEventSelectQuery(t *testing.T) {
	query, args, err := eventSelectBuilder().OrderBy("e.start_at DESC", "e.id DESC").ToSQL()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT e.id, e.created_at, e.name, e.course_name, e.start_at, e.end_at, e.series_id, s.id AS series_ref_id, s.name AS series_name FROM events e LEFT JOIN series s ON s.id = e.series_id ORDER BY e.start_at DESC, e.id DESC",
		query,
	)
}

func TestPlayerUpdateQuery_OnlySetColumns(t *testing.T) {
	name := "Ana"
	query, args, err := playerUpdateBuilder(5, player.Patch{Name: &name}).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE players SET name = $1 WHERE id = $2 RETURNING id", query)
	assert.Equal(t, []any{"Ana", int64(5)}, args)
}
