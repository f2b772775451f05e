// Package service internal/application/service/favorability.go
package service

import (
	"github.com/rbaiju151/CurrenseeHW3/internal/domain/entity"
)

// Favorability thresholds in percent. Inclusive on both sides.
const (
	favorableThreshold   = 7.5
	unfavorableThreshold = -7.5
)

// PctChange returns the percentage change of current against past. The
// baseline is always a positive exchange rate; callers must not pass a zero
// past.
func PctChange(current, past float64) float64 {
	return (current - past) / past * 100
}

// Favorability labels a percentage change against the fixed thresholds.
func Favorability(pct float64) entity.Verdict {
	switch {
	case pct >= favorableThreshold:
		return entity.VerdictFavorable
	case pct <= unfavorableThreshold:
		return entity.VerdictUnfavorable
	default:
		return entity.VerdictSimilar
	}
}

// HomeCurrencies is the fixed set of supported home currencies, in display
// order.
var HomeCurrencies = []string{"USD", "EUR", "GBP", "CAD", "AUD", "JPY", "CHF", "INR"}

// IsHomeCurrency reports whether code is in the supported home set.
func IsHomeCurrency(code string) bool {
	for _, c := range HomeCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
