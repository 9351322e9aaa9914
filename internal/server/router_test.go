package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stackshop/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubHandler struct {
	catalog func(w http.ResponseWriter, r *http.Request)
	product func(w http.ResponseWriter, r *http.Request)
}

func (s stubHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) { s.catalog(w, r) }
func (s stubHandler) HandleProduct(w http.ResponseWriter, r *http.Request) { s.product(w, r) }

func okStub() stubHandler {
	write := func(body string) func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}
	}
	return stubHandler{catalog: write("catalog"), product: write("product")}
}

func TestRouter_Routes(t *testing.T) {
	stub := okStub()
	router := NewRouter(stub, stub, time.Second, zap.NewNop())

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/healthz", status: http.StatusOK, body: "ok"},
		{path: "/", status: http.StatusOK, body: "catalog"},
		{path: "/product?id=SKU1", status: http.StatusOK, body: "product"},
		{path: "/missing", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRouter_RejectsPost(t *testing.T) {
	stub := okStub()
	router := NewRouter(stub, stub, time.Second, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_RecoversPanics(t *testing.T) {
	stub := okStub()
	stub.catalog = func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}
	router := NewRouter(stub, stub, time.Second, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_RequestID(t *testing.T) {
	var seen string
	stub := okStub()
	stub.catalog = func(w http.ResponseWriter, r *http.Request) {
		seen = httpx.RequestIDFromContext(r.Context())
	}
	router := NewRouter(stub, stub, time.Second, zap.NewNop())

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		rid := rec.Header().Get("X-Request-ID")
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, seen)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", seen)
	})
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	stub := okStub()
	stub.product = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}
	router := NewRouter(stub, stub, time.Second, zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/product?id=x", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/product", fields["path"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "rid-1", fields["requestId"])
}
