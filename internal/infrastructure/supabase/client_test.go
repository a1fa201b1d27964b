package supabase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
	"github.com/riskibarqy/golf-league/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRow struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Series *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"series"`
	StartAt Time `json:"start_at"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL + "/",
		APIKey:         "anon-key",
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
	require.NoError(t, err)
	return client
}

func TestClientSelect_EncodesProjectionAndOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/events", r.URL.Path)
		assert.Equal(t, "*,series:series_id(id,name)", r.URL.Query().Get("select"))
		assert.Equal(t, "start_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		_, _ = io.WriteString(w, `[{"id":3,"name":"Opener","start_at":"2024-03-10T08:00:00+00:00","series":{"id":1,"name":"Spring 2024"}}]`)
	}, resilience.CircuitBreakerConfig{})

	var rows []eventRow
	err := client.Select(context.Background(), "events", Query{
		Embeds: []Embed{{Alias: "series", ForeignKey: "series_id", Columns: []string{"id", "name"}}},
		Order:  []Order{Desc("start_at")},
	}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Opener", rows[0].Name)
	require.NotNil(t, rows[0].Series)
	assert.Equal(t, "Spring 2024", rows[0].Series.Name)
	assert.Equal(t, time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), rows[0].StartAt.Time)
}

func TestClientInsert_SendsArrayAndPrefersRepresentation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[{"name":"Ana"}]`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `[{"id":10,"name":"Ana"}]`)
	}, resilience.CircuitBreakerConfig{})

	var rows []eventRow
	err := client.Insert(context.Background(), "players", Query{}, map[string]any{"name": "Ana"}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 10, rows[0].ID)
}

func TestClientUpdate_FiltersByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.42", r.URL.Query().Get("id"))
		_, _ = io.WriteString(w, `[]`)
	}, resilience.CircuitBreakerConfig{})

	var rows []eventRow
	err := client.Update(context.Background(), "players", Query{}.Where(Eq("id", int64(42))), map[string]any{"name": "B"}, &rows)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClientUpdate_RequiresFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("request must not be sent")
	}, resilience.CircuitBreakerConfig{})

	err := client.Update(context.Background(), "players", Query{}, map[string]any{"name": "B"}, nil)
	require.Error(t, err)
	err = client.Delete(context.Background(), "players", Query{}, nil)
	require.Error(t, err)
}

func TestClient_DecodesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"code":"23503","message":"insert or update violates foreign key constraint","details":"Key (series_id)=(99) is not present","hint":null}`)
	}, resilience.CircuitBreakerConfig{})

	err := client.Insert(context.Background(), "events", Query{}, map[string]any{"series_id": 99}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "23503", apiErr.Code)
	assert.False(t, errors.Is(err, usecase.ErrDependencyUnavailable))
}

func TestClient_ServerErrorsOpenCircuit(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `upstream down`)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 2; i++ {
		var rows []eventRow
		err := client.Select(context.Background(), "players", Query{}, &rows)
		require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "upstream down", apiErr.Message)
	}

	err := client.Select(context.Background(), "players", Query{}, &[]eventRow{})
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	assert.Equal(t, 2, calls)
}

func TestClient_CoalescedSelectsCloseHalfOpenCircuit(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		time.Sleep(50 * time.Millisecond)
		_, _ = io.WriteString(w, `[]`)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: 20 * time.Millisecond, HalfOpenMaxReq: 2})

	err := client.Select(context.Background(), "events", Query{}, &[]eventRow{})
	require.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
	time.Sleep(30 * time.Millisecond)

	for round := 0; round < 3; round++ {
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = client.Select(context.Background(), "events", Query{}, &[]eventRow{})
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			require.NoError(t, err, "round %d", round)
		}
	}

	assert.Equal(t, resilience.CircuitStateClosed, client.breaker.State())
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(ClientConfig{BaseURL: "ftp://example.com"})
	require.Error(t, err)

	_, err = NewClient(ClientConfig{BaseURL: ""})
	require.Error(t, err)
}
