package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcome(t *testing.T) {
	w := do(t, newTestRouter(newFakeStore()), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The Book Heaven", w.Body.String())
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		w := do(t, newTestRouter(newFakeStore()), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		st := newFakeStore()
		st.pingErr = errors.New("server selection timeout")
		w := do(t, newTestRouter(st), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	})
}

func TestRouter(t *testing.T) {
	h := NewRouter(newFakeStore(), nil, RouterConfig{AllowedOrigins: []string{"https://bookheaven.example"}})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/books", nil)
		req.Header.Set("Origin", "https://bookheaven.example")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://bookheaven.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unmatched route", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/authors", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		w := do(t, h, http.MethodPut, "/books/0123456789abcdef01234567", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("all-books detail rejects malformed id", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/all-books/not-an-id", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
