package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_BeforeFirstRun(t *testing.T) {
	h := New(Config{Log: zerolog.Nop()}).Handler()

	assert.Equal(t, http.StatusServiceUnavailable, get(t, h, "/").Code)

	rec := get(t, h, "/api/analysis")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), notReady)

	rec = get(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["ready"])
}

func TestServer_ServesLatest(t *testing.T) {
	store := NewStore()
	h := New(Config{Log: zerolog.Nop(), Store: store}).Handler()
	at := time.Date(2025, 9, 12, 4, 0, 0, 0, time.UTC)

	store.Publish([]byte("<html>first</html>"), []byte(`{"screened_funds":[]}`), at)
	store.Publish([]byte("<html>second</html>"), []byte(`{"screened_funds":[{}]}`), at.Add(time.Hour))

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>second</html>", rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Fri, 12 Sep 2025 05:00:00 GMT", rec.Header().Get("Last-Modified"))

	rec = get(t, h, "/api/analysis")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"screened_funds":[{}]}`, rec.Body.String())

	rec = get(t, h, "/health")
	assert.Contains(t, rec.Body.String(), `"last_run":"2025-09-12T05:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"ready":true`)
}

func TestServer_CORSAndMethods(t *testing.T) {
	store := NewStore()
	store.Publish([]byte("x"), []byte("{}"), time.Now())
	h := New(Config{Log: zerolog.Nop(), Store: store}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/analysis", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
}
