// internal/mocks/mocks.go
package mocks

import (
	"context"
	"time"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockCountryDirectory mocks the CountryDirectory interface
type MockCountryDirectory struct {
	mock.Mock
}

func (m *MockCountryDirectory) LoadCountries(ctx context.Context) ([]entity.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Country), args.Error(1)
}

// MockRateProvider mocks the RateProvider interface
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) GetRate(ctx context.Context, day time.Time, home, dest string) (float64, error) {
	args := m.Called(ctx, day, home, dest)
	return args.Get(0).(float64), args.Error(1)
}
