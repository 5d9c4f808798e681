package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrigger struct {
	runID uuid.UUID
	calls int
}

func (f *fakeTrigger) RunAsync() uuid.UUID {
	f.calls++
	return f.runID
}

func newTestRouter(t *testing.T) (*fakeTrigger, http.Handler) {
	t.Helper()
	trigger := &fakeTrigger{runID: uuid.New()}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return trigger, New(trigger, logger)
}

func TestTriggerBatch(t *testing.T) {
	trigger, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/batch", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, trigger.calls)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, trigger.runID.String(), body["run_id"])
}

func TestTriggerBatch_MethodNotAllowed(t *testing.T) {
	trigger, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/batch", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, trigger.calls)
}

func TestHealthz(t *testing.T) {
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
