package httpapi

import "net/http"

type eventsViewDTO struct {
	Events []eventDTO  `json:"events"`
	Series []seriesDTO `json:"series"`
}

type resultsViewDTO struct {
	Results []resultDTO `json:"results"`
	Players []playerDTO `json:"players"`
	Events  []eventDTO  `json:"events"`
}

type photosViewDTO struct {
	Photos []photoDTO `json:"photos"`
	Events []eventDTO `json:"events"`
}

func (h *Handler) EventsView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EventsView")
	defer span.End()

	view, err := h.viewService.Events(ctx)
	if err != nil {
		h.fail(ctx, w, "load events view failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventsViewDTO{
		Events: mapSlice(view.Events, eventToDTO),
		Series: mapSlice(view.Series, seriesToDTO),
	})
}

func (h *Handler) ResultsView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResultsView")
	defer span.End()

	view, err := h.viewService.Results(ctx)
	if err != nil {
		h.fail(ctx, w, "load results view failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, resultsViewDTO{
		Results: mapSlice(view.Results, resultToDTO),
		Players: mapSlice(view.Players, playerToDTO),
		Events:  mapSlice(view.Events, eventToDTO),
	})
}

func (h *Handler) PhotosView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PhotosView")
	defer span.End()

	view, err := h.viewService.Photos(ctx)
	if err != nil {
		h.fail(ctx, w, "load photos view failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, photosViewDTO{
		Photos: mapSlice(view.Photos, h.photoToDTO),
		Events: mapSlice(view.Events, eventToDTO),
	})
}
