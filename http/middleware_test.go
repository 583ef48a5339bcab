package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	qshttp "github.com/sagarc03/quickserve/http"
)

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = qshttp.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	qshttp.RequestIDMiddleware(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(qshttp.RequestIDHeader))
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = qshttp.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(qshttp.RequestIDHeader, "client-id")
	rec := httptest.NewRecorder()
	qshttp.RequestIDMiddleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get(qshttp.RequestIDHeader))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", qshttp.RequestIDFromContext(req.Context()))
}

func TestAccessLogMiddleware_PassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("OK"))
	})

	rec := httptest.NewRecorder()
	qshttp.AccessLogMiddleware(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRecoverMiddleware_Panic(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something broke")
	})

	rec := httptest.NewRecorder()
	wrapped := qshttp.RecoverMiddleware(qshttp.NewTranslator(false))(handler)

	assert.NotPanics(t, func() {
		wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":500,"message":"Internal Server Error"}`, rec.Body.String())
}

func TestRecoverMiddleware_PanicTraceInDevMode(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("nil map write"))
	})

	rec := httptest.NewRecorder()
	qshttp.RecoverMiddleware(qshttp.NewTranslator(true))(handler).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := decodeError(t, rec)
	assert.Equal(t, float64(500), body["status"])
	assert.Contains(t, body["trace"], "nil map write")
}

func TestRecoverMiddleware_AbortHandlerRepanics(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	wrapped := qshttp.RecoverMiddleware(qshttp.NewTranslator(false))(handler)

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverMiddleware_NoPanic(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	qshttp.RecoverMiddleware(qshttp.NewTranslator(false))(handler).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
