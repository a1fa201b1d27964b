package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/domain/event"
)

type createEventRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	CourseName string `json:"course_name" validate:"required,max=160"`
	StartAt    string `json:"start_at" validate:"required"`
	EndAt      string `json:"end_at" validate:"required"`
	SeriesID   int64  `json:"series_id" validate:"required,gt=0"`
}

type updateEventRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=120"`
	CourseName *string `json:"course_name" validate:"omitempty,max=160"`
	StartAt    *string `json:"start_at"`
	EndAt      *string `json:"end_at"`
	SeriesID   *int64  `json:"series_id" validate:"omitempty,gt=0"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	items, err := h.eventService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list events failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, eventToDTO))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	var req createEventRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startAt, err := parseTimestamp("start_at", req.StartAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endAt, err := parseTimestamp("end_at", req.EndAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.eventService.Create(ctx, event.Fields{
		Name:       req.Name,
		CourseName: req.CourseName,
		StartAt:    startAt,
		EndAt:      endAt,
		SeriesID:   req.SeriesID,
	})
	if err != nil {
		h.fail(ctx, w, "create event failed", err, "series_id", req.SeriesID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(created))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEvent")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateEventRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startAt, err := parseOptionalTimestamp("start_at", req.StartAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endAt, err := parseOptionalTimestamp("end_at", req.EndAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.eventService.Update(ctx, id, event.Patch{
		Name:       req.Name,
		CourseName: req.CourseName,
		StartAt:    startAt,
		EndAt:      endAt,
		SeriesID:   req.SeriesID,
	})
	if err != nil {
		h.fail(ctx, w, "update event failed", err, "event_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventToDTO(updated))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.eventService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete event failed", err, "event_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, deletedDTO{ID: id, Deleted: true})
}
