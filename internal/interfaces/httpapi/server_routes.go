package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminKey string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdminKey(adminKey, fn))
	}

	admin("GET /v1/players", handler.ListPlayers)
	admin("POST /v1/players", handler.CreatePlayer)
	admin("PATCH /v1/players/{id}", handler.UpdatePlayer)
	admin("DELETE /v1/players/{id}", handler.DeletePlayer)

	admin("GET /v1/series", handler.ListSeries)
	admin("POST /v1/series", handler.CreateSeries)
	admin("PATCH /v1/series/{id}", handler.UpdateSeries)
	admin("DELETE /v1/series/{id}", handler.DeleteSeries)

	admin("GET /v1/events", handler.ListEvents)
	admin("POST /v1/events", handler.CreateEvent)
	admin("PATCH /v1/events/{id}", handler.UpdateEvent)
	admin("DELETE /v1/events/{id}", handler.DeleteEvent)

	admin("GET /v1/results", handler.ListResults)
	admin("POST /v1/results", handler.CreateResult)
	admin("PATCH /v1/results/{id}", handler.UpdateResult)
	admin("DELETE /v1/results/{id}", handler.DeleteResult)

	admin("GET /v1/photos", handler.ListPhotos)
	admin("POST /v1/photos", handler.CreatePhoto)
	admin("POST /v1/photos/upload", handler.CreatePhotoWithImage)
	admin("PATCH /v1/photos/{id}", handler.UpdatePhoto)
	admin("PUT /v1/photos/{id}/image", handler.ReplacePhotoImage)
	admin("DELETE /v1/photos/{id}", handler.DeletePhoto)

	admin("POST /v1/uploads", handler.UploadImages)

	// Screen loaders: a primary list plus the lookups its forms need.
	admin("GET /v1/views/events", handler.EventsView)
	admin("GET /v1/views/results", handler.ResultsView)
	admin("GET /v1/views/photos", handler.PhotosView)
}
