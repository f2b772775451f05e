// internal/infrastructure/middleware/middleware_test.go
package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Context().Value(requestIDKey)
		assert.NotNil(t, requestID)
		w.Write([]byte(requestID.(string)))
	})

	mw := RequestID(nextHandler)

	// No existing ID: one gets generated
	req := httptest.NewRequest("GET", "/snapshot", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, w.Body.String())

	// Existing ID is preserved
	req = httptest.NewRequest("GET", "/snapshot", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w = httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "test-id-123", w.Body.String())
}

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestIDKey, "test-id-123")
	assert.Equal(t, "test-id-123", GetRequestID(ctx))

	assert.Equal(t, "unknown", GetRequestID(context.Background()))
}

func TestMiddlewareChain(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, logger.InfoLevel)

	finalHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(GetRequestID(r.Context())))
	})

	chain := RequestID(RequestLogging(log)(finalHandler))

	req := httptest.NewRequest("GET", "/countries", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w := httptest.NewRecorder()

	chain.ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Body.String())

	// Both request and response lines carry the ID and the captured status
	logs := buf.String()
	assert.Contains(t, logs, "test-id-123")
	assert.Contains(t, logs, "Request received")
	assert.Contains(t, logs, "Response sent")
	assert.Contains(t, logs, "418")
}
