package rest

import (
	"context"

	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
)

const eventsTable = "events"

var eventProjection = supabase.Query{
	Embeds: []supabase.Embed{{Alias: "series", ForeignKey: "series_id", Columns: idNameColumns}},
}

var eventListQuery = supabase.Query{
	Embeds: eventProjection.Embeds,
	Order:  []supabase.Order{supabase.Desc("start_at")},
}

type eventRow struct {
	ID         int64         `json:"id"`
	CreatedAt  supabase.Time `json:"created_at"`
	Name       string        `json:"name"`
	CourseName string        `json:"course_name"`
	StartAt    supabase.Time `json:"start_at"`
	EndAt      supabase.Time `json:"end_at"`
	SeriesID   int64         `json:"series_id"`
	Series     *idRef        `json:"series"`
}

type eventInsert struct {
	Name       string        `json:"name"`
	CourseName string        `json:"course_name"`
	StartAt    supabase.Time `json:"start_at"`
	EndAt      supabase.Time `json:"end_at"`
	SeriesID   int64         `json:"series_id"`
}

func (r eventRow) toDomain() event.Event {
	out := event.Event{
		ID:         r.ID,
		CreatedAt:  r.CreatedAt.Time,
		Name:       r.Name,
		CourseName: r.CourseName,
		StartAt:    r.StartAt.Time,
		EndAt:      r.EndAt.Time,
		SeriesID:   r.SeriesID,
	}
	if r.Series != nil {
		out.Series = &event.SeriesRef{ID: r.Series.ID, Name: r.Series.Name}
	}
	return out
}

func eventPatchBody(patch event.Patch) map[string]any {
	body := make(map[string]any, 5)
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.CourseName != nil {
		body["course_name"] = *patch.CourseName
	}
	if patch.StartAt != nil {
		body["start_at"] = supabase.NewTime(*patch.StartAt)
	}
	if patch.EndAt != nil {
		body["end_at"] = supabase.NewTime(*patch.EndAt)
	}
	if patch.SeriesID != nil {
		body["series_id"] = *patch.SeriesID
	}
	return body
}

type EventRepository struct {
	client TableClient
}

func NewEventRepository(client TableClient) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	var rows []eventRow
	if err := r.client.Select(ctx, eventsTable, eventListQuery, &rows); err != nil {
		return nil, storeError("select events", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *EventRepository) Create(ctx context.Context, fields event.Fields) (event.Event, error) {
	insert := eventInsert{
		Name:       fields.Name,
		CourseName: fields.CourseName,
		StartAt:    supabase.NewTime(fields.StartAt),
		EndAt:      supabase.NewTime(fields.EndAt),
		SeriesID:   fields.SeriesID,
	}

	var rows []eventRow
	if err := r.client.Insert(ctx, eventsTable, eventProjection, insert, &rows); err != nil {
		return event.Event{}, storeError("insert event", err)
	}
	if len(rows) == 0 {
		return event.Event{}, storeError("insert event", errEmptyRepresentation)
	}
	return rows[0].toDomain(), nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, patch event.Patch) (event.Event, error) {
	var rows []eventRow
	if err := r.client.Update(ctx, eventsTable, byID(eventProjection, id), eventPatchBody(patch), &rows); err != nil {
		return event.Event{}, storeError("update event", err)
	}
	row, err := single(rows, eventsTable, id)
	if err != nil {
		return event.Event{}, err
	}
	return row.toDomain(), nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	var rows []idRef
	if err := r.client.Delete(ctx, eventsTable, byID(supabase.Query{Columns: []string{"id"}}, id), &rows); err != nil {
		return storeError("delete event", err)
	}
	if len(rows) == 0 {
		return notFound(eventsTable, id)
	}
	return nil
}
