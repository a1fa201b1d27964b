package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-league/internal/domain/player"
)

type createPlayerRequest struct {
	Name          string  `json:"name" validate:"required,max=120"`
	GHINNo        string  `json:"ghin_no" validate:"max=20"`
	HandicapIndex float64 `json:"handicap_index" validate:"gte=-10,lte=54"`
}

type updatePlayerRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=120"`
	GHINNo        *string  `json:"ghin_no" validate:"omitempty,max=20"`
	HandicapIndex *float64 `json:"handicap_index" validate:"omitempty,gte=-10,lte=54"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.playerService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, playerToDTO))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, player.Fields{
		Name:          req.Name,
		GHINNo:        req.GHINNo,
		HandicapIndex: req.HandicapIndex,
	})
	if err != nil {
		h.fail(ctx, w, "create player failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updatePlayerRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, id, player.Patch{
		Name:          req.Name,
		GHINNo:        req.GHINNo,
		HandicapIndex: req.HandicapIndex,
	})
	if err != nil {
		h.fail(ctx, w, "update player failed", err, "player_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.playerService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete player failed", err, "player_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, deletedDTO{ID: id, Deleted: true})
}
