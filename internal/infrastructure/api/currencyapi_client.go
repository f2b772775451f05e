// Package api internal/infrastructure/api/currencyapi_client.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/errs"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/cache"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
)

const (
	currencyAPIBaseURL = "https://api.currencyapi.com/v3"
	latestPath         = "/latest"
	historicalPath     = "/historical"

	dateLayout = "2006-01-02"
)

// rateResponse mirrors the provider's nested data-by-currency structure.
// Value is a pointer so a node that exists but lacks a value is
// distinguishable from zero.
type rateResponse struct {
	Data map[string]struct {
		Value *float64 `json:"value"`
	} `json:"data"`
}

// CurrencyAPIClient looks up conversion rates from currencyapi.com. A day
// equal to the current date uses the latest-rate endpoint; any past day uses
// the historical endpoint with an explicit ISO date. Every result is
// memoized per (day, home, dest) for the cache TTL, so identical lookups
// inside the window never re-hit the network. There are no retries; a failed
// call surfaces immediately.
type CurrencyAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *cache.Memo[float64]
	logger     logger.Logger

	// now is swappable in tests to pin the latest/historical decision.
	now func() time.Time
}

// NewCurrencyAPIClient creates a rate client. The API key may be empty, in
// which case every lookup fails with a configuration error before touching
// the network.
func NewCurrencyAPIClient(baseURL, apiKey string, httpClient *http.Client, ttl time.Duration, log logger.Logger) *CurrencyAPIClient {
	if baseURL == "" {
		baseURL = currencyAPIBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &CurrencyAPIClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      cache.NewMemo[float64](ttl),
		logger:     log,
		now:        time.Now,
	}
}

// GetRate returns how many units of dest one unit of home bought on day.
func (c *CurrencyAPIClient) GetRate(ctx context.Context, day time.Time, home, dest string) (float64, error) {
	if home == "" || dest == "" {
		return 0, fmt.Errorf("currency codes must not be empty (home=%q, dest=%q)", home, dest)
	}

	// Identity pairs short-circuit before anything else, credentials
	// included.
	if home == dest {
		return 1.0, nil
	}

	if c.apiKey == "" {
		return 0, &errs.ConfigurationError{Reason: "CURRENCYAPI_KEY is not set; refusing to send an unauthenticated request"}
	}

	dayISO := day.Format(dateLayout)
	todayISO := c.now().Format(dateLayout)
	if dayISO > todayISO {
		return 0, fmt.Errorf("rate date %s is in the future", dayISO)
	}

	key := dayISO + ":" + home + ":" + dest
	return c.cache.GetOrFetch(key, func() (float64, error) {
		return c.fetchRate(ctx, dayISO, todayISO, home, dest)
	})
}

func (c *CurrencyAPIClient) fetchRate(ctx context.Context, dayISO, todayISO, home, dest string) (float64, error) {
	params := url.Values{}
	params.Set("base_currency", home)
	params.Set("currencies", dest)

	endpoint := historicalPath
	if dayISO == todayISO {
		endpoint = latestPath
	} else {
		params.Set("date", dayISO)
	}

	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	c.logger.Debug("Fetching exchange rate", map[string]interface{}{
		"endpoint": endpoint,
		"date":     dayISO,
		"home":     home,
		"dest":     dest,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &errs.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Rate provider throttled request", map[string]interface{}{
			"home": home,
			"dest": dest,
		})
		return 0, &errs.RateLimitError{}
	}

	if resp.StatusCode != http.StatusOK {
		return 0, &errs.TransportError{StatusCode: resp.StatusCode}
	}

	var parsed rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode rate response: %w", err)
	}

	node, ok := parsed.Data[dest]
	if !ok || node.Value == nil || *node.Value <= 0 {
		return 0, &errs.DataShapeError{Currency: dest, Present: presentCodes(parsed)}
	}

	c.logger.Info("Exchange rate fetched", map[string]interface{}{
		"date": dayISO,
		"home": home,
		"dest": dest,
		"rate": *node.Value,
	})

	return *node.Value, nil
}

func presentCodes(parsed rateResponse) []string {
	codes := make([]string, 0, len(parsed.Data))
	for code := range parsed.Data {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
