package meta

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"post_syncer/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.MetaConfig{
		BaseURL:      server.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		PageSize:     25,
		Timeout:      5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
		},
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(cfg, logger), server
}

func TestFetchMedia_ReturnsOldestFirst(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ig-1/media", r.URL.Path)
		assert.Equal(t, "secret-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		// Newest-first, the way the platform serves it.
		w.Write([]byte(`{"data":[
			{"id":"m3","media_url":"https://cdn/3.jpg","timestamp":"2024-03-03T10:00:00+0000","media_type":"IMAGE"},
			{"id":"m2","media_url":"https://cdn/2.mp4","timestamp":"2024-03-02T10:00:00+0000","media_type":"VIDEO"},
			{"id":"m1","media_url":"https://cdn/1.jpg","timestamp":"2024-03-01T10:00:00+0000","media_type":"IMAGE","caption":"first post"}
		]}`))
	})

	media, err := client.FetchMedia(context.Background(), "secret-token", "ig-1")
	require.NoError(t, err)
	require.Len(t, media, 3)

	assert.Equal(t, "m1", media[0].ID)
	assert.Equal(t, "m2", media[1].ID)
	assert.Equal(t, "m3", media[2].ID)
	assert.Equal(t, "first post", media[0].Caption)
	assert.True(t, media[0].Timestamp.Before(media[1].Timestamp))
}

func TestFetchMedia_ParsesCarouselChildren(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"c1","media_url":"https://cdn/cover.jpg","timestamp":"2024-03-01T10:00:00+0000","media_type":"CAROUSEL_ALBUM",
			 "children":{"data":[
				{"id":"c1a","media_url":"https://cdn/a.jpg","media_type":"IMAGE"},
				{"id":"c1b","media_url":"https://cdn/b.mp4","media_type":"VIDEO"}
			 ]}}
		]}`))
	})

	media, err := client.FetchMedia(context.Background(), "token", "ig-1")
	require.NoError(t, err)
	require.Len(t, media, 1)
	require.Len(t, media[0].Children, 2)
	assert.Equal(t, "c1a", media[0].Children[0].ID)
	assert.Equal(t, "c1b", media[0].Children[1].ID)
}

func TestFetchMedia_EmptyAccount(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	})

	media, err := client.FetchMedia(context.Background(), "token", "ig-1")
	require.NoError(t, err)
	assert.Empty(t, media)
}

func TestFetchMedia_AcceptsRFC3339Timestamps(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"id":"m1","media_url":"https://cdn/1.jpg","timestamp":"2024-03-01T10:00:00+09:00","media_type":"IMAGE"}
		]}`))
	})

	media, err := client.FetchMedia(context.Background(), "token", "ig-1")
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, 2024, media[0].Timestamp.Year())
}

func TestFetchMedia_ExpiredToken(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Session has expired","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"trace"}}`))
	})

	_, err := client.FetchMedia(context.Background(), "stale-token", "ig-1")
	require.Error(t, err)
	assert.True(t, IsAuthorizationExpired(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 463, apiErr.Subcode)
	assert.Equal(t, 190, apiErr.Code)

	// Classified errors are terminal, no retry.
	assert.Equal(t, 1, calls)
}

func TestFetchMedia_GenericAPIErrorIsNotExpired(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`))
	})

	_, err := client.FetchMedia(context.Background(), "token", "ig-1")
	require.Error(t, err)
	assert.False(t, IsAuthorizationExpired(err))
}

func TestFetchMedia_RetriesTransportFailures(t *testing.T) {
	calls := 0
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	server.Close()

	_, err := client.FetchMedia(context.Background(), "token", "ig-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 0, calls)
}

func TestExchangeLongLivedToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "short-token", r.URL.Query().Get("fb_exchange_token"))
		assert.Equal(t, "client-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "client-secret", r.URL.Query().Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"long-token","token_type":"bearer","expires_in":5183944}`))
	})

	token, err := client.ExchangeLongLivedToken(context.Background(), "short-token")
	require.NoError(t, err)
	assert.Equal(t, "long-token", token)
}

func TestResolveLinkedAccount(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accounts":{"data":[
			{"name":"Plain Page","id":"p1"},
			{"name":"Shop Page","id":"p2","instagram_business_account":{"id":"ig-42"}}
		]},"id":"user-1"}`))
	})

	account, err := client.ResolveLinkedAccount(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "ig-42", account.ID)
	assert.Equal(t, "Shop Page", account.Name)
}

func TestResolveLinkedAccount_NoBusinessAccount(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accounts":{"data":[{"name":"Plain Page","id":"p1"}]},"id":"user-1"}`))
	})

	_, err := client.ResolveLinkedAccount(context.Background(), "token")
	assert.True(t, errors.Is(err, ErrAccountNotFound))
}
