package interfaces

import "market-streamer/src/models"

// -----------------------------------------------------------------------------
// IDatabase defines the contract for the bar archive.
// -----------------------------------------------------------------------------

type IDatabase interface {

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveBar archives one pushed bar for its stream coordinates. Duplicate
	// (symbol, exchange, interval, timestamp) rows are upserted.
	SaveBar(symbol, exchange, interval string, bar models.MBar) error

	// -----------------------------------------------------------------------------

	// CleanupOldData removes archived bars older than the retention policy.
	CleanupOldData() error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
