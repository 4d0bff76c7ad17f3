package interfaces

import (
	"context"

	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------
// ICache defines the contract for the latest-bar cache.
// -----------------------------------------------------------------------------

type ICache interface {

	// SetLatestBar records the most recently pushed bar for a stream.
	SetLatestBar(ctx context.Context, symbol, exchange, interval string, bar models.MBar) error

	// -----------------------------------------------------------------------------

	// GetLatestBar returns the cached bar, or (nil, nil) on a cache miss.
	GetLatestBar(ctx context.Context, symbol, exchange, interval string) (*models.MBar, error)

	// -----------------------------------------------------------------------------

	// Close releases the cache connection.
	Close() error
}
