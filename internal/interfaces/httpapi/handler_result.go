package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/domain/result"
)

type createResultRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	EventID  int64 `json:"event_id" validate:"required,gt=0"`
	Points   int   `json:"points" validate:"gte=0"`
}

type updateResultRequest struct {
	PlayerID *int64 `json:"player_id" validate:"omitempty,gt=0"`
	EventID  *int64 `json:"event_id" validate:"omitempty,gt=0"`
	Points   *int   `json:"points" validate:"omitempty,gte=0"`
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	items, err := h.resultService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list results failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, resultToDTO))
}

func (h *Handler) CreateResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateResult")
	defer span.End()

	var req createResultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.resultService.Create(ctx, result.Fields{
		PlayerID: req.PlayerID,
		EventID:  req.EventID,
		Points:   req.Points,
	})
	if err != nil {
		h.fail(ctx, w, "create result failed", err, "player_id", req.PlayerID, "event_id", req.EventID)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, resultToDTO(created))
}

func (h *Handler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateResult")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateResultRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.resultService.Update(ctx, id, result.Patch{
		PlayerID: req.PlayerID,
		EventID:  req.EventID,
		Points:   req.Points,
	})
	if err != nil {
		h.fail(ctx, w, "update result failed", err, "result_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, resultToDTO(updated))
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteResult")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.resultService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete result failed", err, "result_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, deletedDTO{ID: id, Deleted: true})
}
