package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:               config.EnvDev,
		HTTPAddr:             ":0",
		DataBackend:          config.BackendMemory,
		MemorySeed:           true,
		CORSAllowedOrigins:   []string{"*"},
		AdminAPIKey:          "local-admin",
		StorageDefaultBucket: "photos",
		UploadMaxBytes:       1 << 20,
		UploadMaxDimension:   2048,
		UploadWorkers:        2,
	}
}

func TestNewHTTPServer_MemoryBackendServesSeededPlayers(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cleanup()) })

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	req.Header.Set("X-Admin-Key", "local-admin")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Bea Reyes")
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_UnknownBackend(t *testing.T) {
	cfg := memoryConfig()
	cfg.DataBackend = "sqlite"

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.ErrorContains(t, err, "unsupported data backend")
}

func TestNewObjectStorage_WithoutURLRejectsUploads(t *testing.T) {
	storage, err := newObjectStorage(config.Config{}, logging.NewNop())
	require.NoError(t, err)

	err = storage.Upload(context.Background(), "photos", "event-photos/a.png", "image/png", []byte{1})
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	require.Empty(t, storage.PublicURL("photos", "event-photos/a.png"))
}

func TestNewObjectStorage_BuildsSupabaseStorage(t *testing.T) {
	storage, err := newObjectStorage(config.Config{SupabaseURL: "https://example.supabase.co/"}, logging.NewNop())
	require.NoError(t, err)
	require.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/photos/event-photos/a.png",
		storage.PublicURL("photos", "event-photos/a.png"),
	)
}
