// Package service internal/application/service/comparison_service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/entity"
	"github.com/rbaiju151/CurrenseeHW3/internal/domain/repository"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/middleware"
)

// MaxComparisonDestinations caps how many countries one comparison may cover.
const MaxComparisonDestinations = 8

// Comparison is the multi-destination result, sorted most favorable first.
type Comparison struct {
	HomeCurrency  string                 `json:"home_currency"`
	Rows          []entity.ComparisonRow `json:"rows"`
	MostFavorable *entity.ComparisonRow  `json:"most_favorable,omitempty"`
	ElapsedMS     int64                  `json:"elapsed_ms"`
}

// ComparisonService runs the multi-destination flow.
type ComparisonService struct {
	directory repository.CountryDirectory
	rates     repository.RateProvider
	logger    logger.Logger
	now       func() time.Time
}

// NewComparisonService creates a new comparison service
func NewComparisonService(directory repository.CountryDirectory, rates repository.RateProvider, log logger.Logger) *ComparisonService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ComparisonService{
		directory: directory,
		rates:     rates,
		logger:    log,
		now:       time.Now,
	}
}

// Compare fetches today's and the ~1 year rate for each named destination,
// sequentially in selection order, and ranks the results by percentage
// change descending. Names not found in the directory are skipped; the first
// fetch error aborts the whole flow.
func (s *ComparisonService) Compare(ctx context.Context, home string, countryNames []string) (*Comparison, error) {
	requestID := middleware.GetRequestID(ctx)

	if len(countryNames) == 0 {
		return nil, fmt.Errorf("at least one destination country is required")
	}
	if len(countryNames) > MaxComparisonDestinations {
		return nil, fmt.Errorf("at most %d destination countries are allowed, got %d",
			MaxComparisonDestinations, len(countryNames))
	}

	s.logger.Info("Comparing destinations", map[string]interface{}{
		"request_id":   requestID,
		"home":         home,
		"destinations": len(countryNames),
	})

	countries, err := s.directory.LoadCountries(ctx)
	if err != nil {
		s.logger.Error("Failed to load country directory", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to load country directory: %w", err)
	}

	byName := make(map[string]entity.Country, len(countries))
	for _, c := range countries {
		byName[c.Name] = c
	}

	today := s.now()
	oneYearAgo := today.AddDate(-1, 0, 0)
	start := time.Now()

	rows := make([]entity.ComparisonRow, 0, len(countryNames))
	for _, name := range countryNames {
		country, ok := byName[name]
		if !ok {
			s.logger.Warn("Skipping unknown destination", map[string]interface{}{
				"request_id": requestID,
				"country":    name,
			})
			continue
		}

		dest := country.CurrencyCode

		rateToday, err := s.rates.GetRate(ctx, today, home, dest)
		if err != nil {
			return nil, s.fetchFailed(requestID, home, dest, err)
		}

		ratePast, err := s.rates.GetRate(ctx, oneYearAgo, home, dest)
		if err != nil {
			return nil, s.fetchFailed(requestID, home, dest, err)
		}

		change := PctChange(rateToday, ratePast)
		rows = append(rows, entity.ComparisonRow{
			Country:        country.Name,
			Currency:       dest,
			RateToday:      rateToday,
			RateOneYearAgo: ratePast,
			PctChange:      change,
			Verdict:        Favorability(change),
		})
	}

	// Stable keeps selection order for equal changes.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PctChange > rows[j].PctChange
	})

	comparison := &Comparison{
		HomeCurrency: home,
		Rows:         rows,
		ElapsedMS:    time.Since(start).Milliseconds(),
	}
	if len(rows) > 0 {
		comparison.MostFavorable = &rows[0]
	}

	s.logger.Info("Comparison completed", map[string]interface{}{
		"request_id": requestID,
		"home":       home,
		"rows":       len(rows),
		"elapsed_ms": comparison.ElapsedMS,
	})

	return comparison, nil
}

func (s *ComparisonService) fetchFailed(requestID, home, dest string, err error) error {
	s.logger.Error("Rate fetch failed, aborting comparison", map[string]interface{}{
		"request_id": requestID,
		"home":       home,
		"dest":       dest,
		"error":      err.Error(),
	})
	return fmt.Errorf("failed to fetch rate for %s: %w", dest, err)
}
