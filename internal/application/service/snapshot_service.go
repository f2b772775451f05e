// Package service internal/application/service/snapshot_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/entity"
	"github.com/rbaiju151/CurrenseeHW3/internal/domain/repository"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/middleware"
)

// ErrUnknownCountry is returned when a destination name is not in the
// directory.
var ErrUnknownCountry = errors.New("unknown destination country")

// HistoricalRate pairs a past day's rate with its change against today.
type HistoricalRate struct {
	Date      time.Time `json:"date"`
	Rate      float64   `json:"rate"`
	PctChange float64   `json:"pct_change"`
}

// Snapshot is the single-destination result: today's rate plus the ~1, ~3
// and ~5 year lookbacks, with the verdict taken from the 1 year change only.
type Snapshot struct {
	Country       entity.Country `json:"country"`
	HomeCurrency  string         `json:"home_currency"`
	RateToday     float64        `json:"rate_today"`
	OneYearAgo    HistoricalRate `json:"one_year_ago"`
	ThreeYearsAgo HistoricalRate `json:"three_years_ago"`
	FiveYearsAgo  HistoricalRate `json:"five_years_ago"`
	Verdict       entity.Verdict `json:"verdict"`
	ElapsedMS     int64          `json:"elapsed_ms"`
}

// SnapshotService runs the single-destination flow.
type SnapshotService struct {
	directory repository.CountryDirectory
	rates     repository.RateProvider
	logger    logger.Logger
	now       func() time.Time
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(directory repository.CountryDirectory, rates repository.RateProvider, log logger.Logger) *SnapshotService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &SnapshotService{
		directory: directory,
		rates:     rates,
		logger:    log,
		now:       time.Now,
	}
}

// GetSnapshot fetches today's and the ~1/3/5 year rates for the named
// destination, strictly in that order. The first fetch error aborts the
// remaining lookups.
func (s *SnapshotService) GetSnapshot(ctx context.Context, home, countryName string) (*Snapshot, error) {
	requestID := middleware.GetRequestID(ctx)

	s.logger.Info("Building rate snapshot", map[string]interface{}{
		"request_id": requestID,
		"home":       home,
		"country":    countryName,
	})

	countries, err := s.directory.LoadCountries(ctx)
	if err != nil {
		s.logger.Error("Failed to load country directory", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to load country directory: %w", err)
	}

	country, ok := findCountry(countries, countryName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, countryName)
	}

	dest := country.CurrencyCode
	today := s.now()
	start := time.Now()

	rateToday, err := s.rates.GetRate(ctx, today, home, dest)
	if err != nil {
		return nil, s.fetchFailed(requestID, home, dest, "today", err)
	}

	lookbacks := make([]HistoricalRate, 0, 3)
	for _, years := range []int{1, 3, 5} {
		day := today.AddDate(-years, 0, 0)
		rate, err := s.rates.GetRate(ctx, day, home, dest)
		if err != nil {
			return nil, s.fetchFailed(requestID, home, dest, day.Format("2006-01-02"), err)
		}
		lookbacks = append(lookbacks, HistoricalRate{
			Date:      day,
			Rate:      rate,
			PctChange: PctChange(rateToday, rate),
		})
	}

	snapshot := &Snapshot{
		Country:       country,
		HomeCurrency:  home,
		RateToday:     rateToday,
		OneYearAgo:    lookbacks[0],
		ThreeYearsAgo: lookbacks[1],
		FiveYearsAgo:  lookbacks[2],
		Verdict:       Favorability(lookbacks[0].PctChange),
		ElapsedMS:     time.Since(start).Milliseconds(),
	}

	s.logger.Info("Snapshot built", map[string]interface{}{
		"request_id": requestID,
		"home":       home,
		"dest":       dest,
		"rate_today": rateToday,
		"verdict":    snapshot.Verdict,
		"elapsed_ms": snapshot.ElapsedMS,
	})

	return snapshot, nil
}

func (s *SnapshotService) fetchFailed(requestID, home, dest, day string, err error) error {
	s.logger.Error("Rate fetch failed, aborting snapshot", map[string]interface{}{
		"request_id": requestID,
		"home":       home,
		"dest":       dest,
		"day":        day,
		"error":      err.Error(),
	})
	return fmt.Errorf("failed to fetch rate for %s: %w", day, err)
}

func findCountry(countries []entity.Country, name string) (entity.Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return entity.Country{}, false
}
