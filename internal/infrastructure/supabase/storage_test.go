package supabase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) (*Storage, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	storage, err := NewStorage(StorageConfig{
		BaseURL: server.URL,
		APIKey:  "service-key",
		Logger:  logging.NewNop(),
	})
	require.NoError(t, err)
	return storage, server.URL
}

func TestStorageUpload_PostsObject(t *testing.T) {
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/photos/event-photos/abc.jpg", r.URL.Path)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Equal(t, "false", r.Header.Get("x-upsert"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "jpeg-bytes", string(body))

		_, _ = io.WriteString(w, `{"Key":"photos/event-photos/abc.jpg"}`)
	})

	err := storage.Upload(context.Background(), "photos", "event-photos/abc.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
}

func TestStorageUpload_DecodesError(t *testing.T) {
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`)
	})

	err := storage.Upload(context.Background(), "photos", "abc.png", "image/png", []byte("x"))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Duplicate", apiErr.Code)
	assert.Equal(t, "The resource already exists", apiErr.Message)
}

func TestStorageUpload_RequiresBucketAndPath(t *testing.T) {
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("request must not be sent")
	})

	require.Error(t, storage.Upload(context.Background(), "", "a.png", "image/png", nil))
	require.Error(t, storage.Upload(context.Background(), "photos", " ", "image/png", nil))
}

func TestStoragePublicURL(t *testing.T) {
	storage, base := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {})

	got := storage.PublicURL("photos", "event-photos/abc.JPG")
	assert.Equal(t, base+"/storage/v1/object/public/photos/event-photos/abc.JPG", got)
}

func TestBuildUploadCurlPreview_HidesKey(t *testing.T) {
	preview := buildUploadCurlPreview("https://x.supabase.co/storage/v1/object/photos/a.png", "image/png", 12)
	assert.Contains(t, preview, "Bearer ***")
	assert.Contains(t, preview, "'@<12 bytes>'")
}
