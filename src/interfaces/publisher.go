package interfaces

import "market-streamer/src/models"

// -----------------------------------------------------------------------------

// IPublisher defines the interface for mirroring pushed bars to a message bus
type IPublisher interface {
	// OnBar publishes one pushed bar (fire-and-forget)
	OnBar(symbol, exchange, interval string, bar models.MBar)

	// Connect establishes connection to the message broker
	Connect() error

	// Disconnect closes the connection to the message broker
	Disconnect() error

	// IsConnected returns the current connection status
	IsConnected() bool
}
