// Package repository internal/domain/repository/country_directory.go
package repository

import (
	"context"

	"github.com/rbaiju151/CurrenseeHW3/internal/domain/entity"
)

// CountryDirectory provides the normalized destination-country list.
type CountryDirectory interface {
	// LoadCountries returns every usable country, sorted by name ascending.
	// Records without a name, code, or at least one currency are dropped.
	LoadCountries(ctx context.Context) ([]entity.Country, error)
}
