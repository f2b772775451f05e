// internal/infrastructure/api/currencyapi_client_test.go
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/errs"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func testLogger() logger.Logger {
	return logger.NewJSONLogger(io.Discard, logger.ErrorLevel)
}

func TestGetRateIdentity(t *testing.T) {
	var requests atomic.Int32

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer mockServer.Close()

	// No key configured either; identity must still succeed.
	client := NewCurrencyAPIClient(mockServer.URL, "", mockServer.Client(), time.Hour, testLogger())

	for _, code := range []string{"USD", "EUR", "JPY"} {
		rate, err := client.GetRate(context.Background(), time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC), code, code)
		assert.NoError(t, err)
		assert.Equal(t, 1.0, rate)
	}

	assert.Equal(t, int32(0), requests.Load())
}

func TestGetRateMissingKey(t *testing.T) {
	var requests atomic.Int32

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "", mockServer.Client(), time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Now(), "USD", "JPY")
	assert.Error(t, err)

	var configErr *errs.ConfigurationError
	assert.ErrorAs(t, err, &configErr)

	// The configuration error fires before any network activity.
	assert.Equal(t, int32(0), requests.Load())
}

func TestGetRateHistorical(t *testing.T) {
	var requests atomic.Int32

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, historicalPath, r.URL.Path)
		assert.Equal(t, "2020-03-01", r.URL.Query().Get("date"))
		assert.Equal(t, "USD", r.URL.Query().Get("base_currency"))
		assert.Equal(t, "JPY", r.URL.Query().Get("currencies"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"JPY": {"value": 107.93}}}`))
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "test-key", mockServer.Client(), time.Hour, testLogger())
	client.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	day := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	rate, err := client.GetRate(context.Background(), day, "USD", "JPY")
	assert.NoError(t, err)
	assert.Equal(t, 107.93, rate)

	// A repeat lookup with the same (day, home, dest) stays in the cache.
	rate, err = client.GetRate(context.Background(), day, "USD", "JPY")
	assert.NoError(t, err)
	assert.Equal(t, 107.93, rate)
	assert.Equal(t, int32(1), requests.Load())
}

func TestGetRateLatest(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, latestPath, r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("date"))
		assert.Equal(t, "EUR", r.URL.Query().Get("base_currency"))
		assert.Equal(t, "CHF", r.URL.Query().Get("currencies"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"CHF": {"value": 0.93}}}`))
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "test-key", mockServer.Client(), time.Hour, testLogger())

	today := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	client.now = func() time.Time { return today }

	rate, err := client.GetRate(context.Background(), today, "EUR", "CHF")
	assert.NoError(t, err)
	assert.Equal(t, 0.93, rate)
}

func TestGetRateFutureDate(t *testing.T) {
	client := NewCurrencyAPIClient("http://unused.invalid", "test-key", nil, time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Now().AddDate(0, 0, 2), "USD", "JPY")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "future")
}

func TestGetRateThrottled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "test-key", mockServer.Client(), time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "USD", "JPY")
	assert.Error(t, err)

	// 429 must surface as the throttling kind, not a generic transport
	// failure.
	var rateLimitErr *errs.RateLimitError
	assert.ErrorAs(t, err, &rateLimitErr)

	var transportErr *errs.TransportError
	assert.False(t, errors.As(err, &transportErr))
}

func TestGetRateUpstreamError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "test-key", mockServer.Client(), time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "USD", "JPY")
	assert.Error(t, err)

	var transportErr *errs.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)

	var rateLimitErr *errs.RateLimitError
	assert.False(t, errors.As(err, &rateLimitErr))
}

func TestGetRateMissingCurrency(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"EUR": {"value": 0.91}, "GBP": {"value": 0.78}}}`))
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "test-key", mockServer.Client(), time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "USD", "JPY")
	assert.Error(t, err)

	var dataErr *errs.DataShapeError
	assert.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "JPY", dataErr.Currency)
	assert.Equal(t, []string{"EUR", "GBP"}, dataErr.Present)
	assert.Contains(t, err.Error(), "JPY")
}

func TestGetRateValuelessNode(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"JPY": {}}}`))
	}))
	defer mockServer.Close()

	client := NewCurrencyAPIClient(mockServer.URL, "test-key", mockServer.Client(), time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "USD", "JPY")
	assert.Error(t, err)

	var dataErr *errs.DataShapeError
	assert.ErrorAs(t, err, &dataErr)
}

func TestGetRateEmptyCodes(t *testing.T) {
	client := NewCurrencyAPIClient("http://unused.invalid", "test-key", nil, time.Hour, testLogger())

	_, err := client.GetRate(context.Background(), time.Now(), "", "JPY")
	assert.Error(t, err)

	_, err = client.GetRate(context.Background(), time.Now(), "USD", "")
	assert.Error(t, err)
}
