// Package api internal/infrastructure/api/restcountries_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/entity"
	"github.com/rbaiju151/CurrenseeHW3/internal/domain/errs"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/cache"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
)

const (
	restCountriesBaseURL = "https://restcountries.com/v3.1"
	allCountriesPath     = "/all"

	// countryFields restricts the response to the fields the directory needs.
	countryFields = "name,cca2,currencies,flags,capital,region"
)

// countryRecord mirrors one raw record from the metadata provider.
// Currencies stays raw so the provider's key order survives decoding; a Go
// map would lose it.
type countryRecord struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2       string          `json:"cca2"`
	Currencies json.RawMessage `json:"currencies"`
	Flags      struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
	Capital []string `json:"capital"`
	Region  string   `json:"region"`
}

type currencyInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RESTCountriesClient loads the country directory from the REST Countries
// API. Results are memoized for the cache TTL; country metadata changes
// rarely enough that a stale day is acceptable.
type RESTCountriesClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Memo[[]entity.Country]
	logger     logger.Logger
}

// NewRESTCountriesClient creates a directory client. A nil httpClient gets a
// 15 second timeout; an empty baseURL falls back to the public endpoint.
func NewRESTCountriesClient(baseURL string, httpClient *http.Client, ttl time.Duration, log logger.Logger) *RESTCountriesClient {
	if baseURL == "" {
		baseURL = restCountriesBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RESTCountriesClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      cache.NewMemo[[]entity.Country](ttl),
		logger:     log,
	}
}

// LoadCountries returns the normalized, name-sorted country list.
func (c *RESTCountriesClient) LoadCountries(ctx context.Context) ([]entity.Country, error) {
	return c.cache.GetOrFetch("countries:"+countryFields, func() ([]entity.Country, error) {
		return c.fetchCountries(ctx)
	})
}

func (c *RESTCountriesClient) fetchCountries(ctx context.Context) ([]entity.Country, error) {
	reqURL := c.baseURL + allCountriesPath + "?fields=" + url.QueryEscape(countryFields)

	c.logger.Debug("Fetching country directory", map[string]interface{}{
		"url": reqURL,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errs.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &errs.TransportError{StatusCode: resp.StatusCode}
	}

	var records []countryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode country response: %w", err)
	}

	countries := make([]entity.Country, 0, len(records))
	dropped := 0
	for _, rec := range records {
		country, ok := normalizeCountry(rec)
		if !ok {
			dropped++
			continue
		}
		countries = append(countries, country)
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	c.logger.Info("Country directory loaded", map[string]interface{}{
		"countries": len(countries),
		"dropped":   dropped,
	})

	return countries, nil
}

// normalizeCountry builds a Country from a raw record, reporting false for
// records missing a name, code, or currency.
func normalizeCountry(rec countryRecord) (entity.Country, bool) {
	code, info, ok := primaryCurrency(rec.Currencies)
	if rec.Name.Common == "" || rec.CCA2 == "" || !ok {
		return entity.Country{}, false
	}

	currencyName := info.Name
	if currencyName == "" {
		currencyName = code
	}

	flagURL := rec.Flags.PNG
	if flagURL == "" {
		flagURL = rec.Flags.SVG
	}

	capital := ""
	if len(rec.Capital) > 0 {
		capital = rec.Capital[0]
	}

	return entity.Country{
		Name:           rec.Name.Common,
		Code:           rec.CCA2,
		FlagURL:        flagURL,
		Capital:        capital,
		Region:         rec.Region,
		CurrencyCode:   code,
		CurrencyName:   currencyName,
		CurrencySymbol: info.Symbol,
	}, true
}

// primaryCurrency pulls the first currency key out of the raw currencies
// object, in the provider's own order, along with its descriptive fields.
func primaryCurrency(raw json.RawMessage) (string, currencyInfo, bool) {
	if len(raw) == 0 {
		return "", currencyInfo{}, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return "", currencyInfo{}, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", currencyInfo{}, false
	}

	tok, err = dec.Token()
	if err != nil {
		return "", currencyInfo{}, false
	}
	code, ok := tok.(string)
	if !ok || code == "" {
		// An empty currencies object yields the closing brace here.
		return "", currencyInfo{}, false
	}

	var info currencyInfo
	if err := dec.Decode(&info); err != nil {
		return "", currencyInfo{}, false
	}

	return code, info, true
}
