package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/domain/event"
	qb "github.com/riskibarqy/golf-league/internal/platform/querybuilder"
)

const eventsTable = "events"

var eventSelectColumns = []string{
	"e.id",
	"e.created_at",
	"e.name",
	"e.course_name",
	"e.start_at",
	"e.end_at",
	"e.series_id",
	"s.id AS series_ref_id",
	"s.name AS series_name",
}

func eventSelectBuilder() *qb.SelectBuilder {
	return qb.Select(eventSelectColumns...).
		From("events e").
		LeftJoin("series s", "s.id = e.series_id")
}

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	query, args, err := eventSelectBuilder().
		OrderBy("e.start_at DESC", "e.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeError("select events", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) Create(ctx context.Context, fields event.Fields) (event.Event, error) {
	query, args, err := qb.InsertModel(eventsTable, eventInsertModel{
		Name:       fields.Name,
		CourseName: fields.CourseName,
		StartAt:    fields.StartAt,
		EndAt:      fields.EndAt,
		SeriesID:   fields.SeriesID,
	}, "RETURNING id")
	if err != nil {
		return event.Event{}, fmt.Errorf("build insert event query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return event.Event{}, storeError("insert event", err)
	}
	return r.getByID(ctx, id)
}

func (r *EventRepository) Update(ctx context.Context, id int64, patch event.Patch) (event.Event, error) {
	b := qb.Update(eventsTable)
	if patch.Name != nil {
		b.Set("name", *patch.Name)
	}
	if patch.CourseName != nil {
		b.Set("course_name", *patch.CourseName)
	}
	if patch.StartAt != nil {
		b.Set("start_at", *patch.StartAt)
	}
	if patch.EndAt != nil {
		b.Set("end_at", *patch.EndAt)
	}
	if patch.SeriesID != nil {
		b.Set("series_id", *patch.SeriesID)
	}
	query, args, err := b.Where(qb.Eq("id", id)).Suffix("RETURNING id").ToSQL()
	if err != nil {
		return event.Event{}, fmt.Errorf("build update event query: %w", err)
	}

	if err := execReturningID(ctx, r.db, query, args); err != nil {
		if isNotFound(err) {
			return event.Event{}, notFound(eventsTable, id)
		}
		return event.Event{}, storeError("update event", err)
	}
	return r.getByID(ctx, id)
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, eventsTable, id)
}

func (r *EventRepository) getByID(ctx context.Context, id int64) (event.Event, error) {
	query, args, err := eventSelectBuilder().Where(qb.Eq("e.id", id)).ToSQL()
	if err != nil {
		return event.Event{}, fmt.Errorf("build get event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, notFound(eventsTable, id)
		}
		return event.Event{}, storeError("get event", err)
	}
	return eventFromRow(row), nil
}
