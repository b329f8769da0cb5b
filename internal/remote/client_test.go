package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventSubmitter/internal/config"
	"eventSubmitter/internal/lib/logger/handlers/slogdiscard"
	"eventSubmitter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *models.EventRequest {
	start := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	return &models.EventRequest{
		EventID:       "evt-1",
		EventName:     "Launch Party",
		StartDateTime: start,
		EndDateTime:   start.Add(5 * time.Hour),
		CompanyID:     "co123",
		TableLayouts:  []string{},
		Categories:    []string{},
		ClubCardIDs:   []string{},
		EventGenre:    []string{},
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.Client{
		BaseURL: baseURL,
		Token:   "secret-token",
		Timeout: 2 * time.Second,
	}, slogdiscard.NewDiscardLogger())
}

func TestCreateEventSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var sent map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "evt-1", sent["eventId"])

		// reference lists must be present even when empty
		assert.Contains(t, sent, "tableLayouts")
		assert.Contains(t, sent, "categories")
		assert.Contains(t, sent, "clubCardIds")
		assert.Contains(t, sent, "eventGenre")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","eventId":"evt-1","data":{"tableLayouts":[{"id":"tl-1","name":"Main Floor"}]}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).CreateEvent(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, "evt-1", res.EventID)
	assert.JSONEq(t, `{"tableLayouts":[{"id":"tl-1","name":"Main Floor"}]}`, string(res.Data))
}

func TestCreateEventRemoteError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":"Error","error":"category \"cat-unknown\": unknown reference identifier"}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).CreateEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Nil(t, res)

	var remoteErr *Error
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.StatusCode)
	assert.Contains(t, remoteErr.Description, "unknown reference identifier")
}

func TestCreateEventNoEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateEvent(context.Background(), testEvent())
	require.Error(t, err)

	var remoteErr *Error
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadGateway, remoteErr.StatusCode)
	assert.NotEmpty(t, remoteErr.Error())
}

func TestCreateEventTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	res, err := newTestClient(srv.URL).CreateEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Nil(t, res)

	var remoteErr *Error
	assert.False(t, errors.As(err, &remoteErr), "transport failures carry no remote envelope")
}
