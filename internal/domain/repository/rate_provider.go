package repository

import (
	"context"
	"time"
)

// RateProvider resolves conversion rates between currency pairs.
type RateProvider interface {
	// GetRate returns how many units of dest one unit of home bought on the
	// given day. The identity pair (home == dest) is always exactly 1.0 and
	// never touches the network.
	GetRate(ctx context.Context, day time.Time, home, dest string) (float64, error)
}
