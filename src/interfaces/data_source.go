package interfaces

import (
	"context"

	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------
// IMarketDataSource interface for fetching OHLCV data from the provider.
// -----------------------------------------------------------------------------

type IMarketDataSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchLatest retrieves the most recent bar for the given stream
	// coordinates. interval must be one of the supported interval names.
	// Empty upstream data is reported as an error; callers treat a nil bar
	// like a failed fetch either way.
	FetchLatest(ctx context.Context, symbol, exchange, interval string) (*models.MBar, error)

	// -----------------------------------------------------------------------------

	// FetchHistory retrieves up to nBars bars for the one-shot REST query.
	// futContract is the optional futures contract id (0 = none).
	FetchHistory(ctx context.Context, symbol, exchange, interval string, nBars, futContract int) ([]models.MBar, error)
}
