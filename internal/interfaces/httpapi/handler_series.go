package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/domain/series"
)

type createSeriesRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	StartAt string `json:"start_at" validate:"required"`
	EndAt   string `json:"end_at" validate:"required"`
}

type updateSeriesRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=120"`
	StartAt *string `json:"start_at"`
	EndAt   *string `json:"end_at"`
}

func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeries")
	defer span.End()

	items, err := h.seriesService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list series failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, seriesToDTO))
}

func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeries")
	defer span.End()

	var req createSeriesRequest
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

	created, err := h.seriesService.Create(ctx, series.Fields{Name: req.Name, StartAt: startAt, EndAt: endAt})
	if err != nil {
		h.fail(ctx, w, "create series failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, seriesToDTO(created))
}

func (h *Handler) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeries")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateSeriesRequest
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

	updated, err := h.seriesService.Update(ctx, id, series.Patch{Name: req.Name, StartAt: startAt, EndAt: endAt})
	if err != nil {
		h.fail(ctx, w, "update series failed", err, "series_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seriesToDTO(updated))
}

func (h *Handler) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeries")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.seriesService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete series failed", err, "series_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, deletedDTO{ID: id, Deleted: true})
}
