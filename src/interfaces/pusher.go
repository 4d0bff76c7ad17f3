package interfaces

// -----------------------------------------------------------------------------

// IStreamPusher is the one-way channel a streaming task pushes events through.
// Push returns an error once the underlying connection is gone; the caller
// must treat that as fatal for its own lifetime, not retry.
type IStreamPusher interface {
	Push(event interface{}) error
}
