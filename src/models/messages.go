package models

// -----------------------------------------------------------------------------
// Inbound protocol message (one JSON object per websocket message)
// -----------------------------------------------------------------------------

// MSubscriptionMessage is the client request to start or stop a stream.
// Interval and RefreshPeriod carry protocol defaults when omitted.
type MSubscriptionMessage struct {
	Action        string `json:"action"` // "subscribe" or "unsubscribe"
	Symbol        string `json:"symbol"`
	Exchange      string `json:"exchange"`
	Interval      string `json:"interval"`
	RefreshPeriod int    `json:"refreshPeriod"` // seconds
}

// -----------------------------------------------------------------------------
// Outbound events
// -----------------------------------------------------------------------------

// MBarEvent is the data event pushed for every sampled bar. Datetime is the
// bar timestamp serialized as ISO-8601.
type MBarEvent struct {
	Datetime string  `json:"datetime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   float64 `json:"volume"`
	Symbol   string  `json:"symbol"`
	Exchange string  `json:"exchange"`
	Interval string  `json:"interval"`
}

// -----------------------------------------------------------------------------

// MErrorEvent reports a protocol-level failure on the connection.
type MErrorEvent struct {
	Error string `json:"error"`
}

// -----------------------------------------------------------------------------

// MStreamErrorEvent reports an upstream failure scoped to one subscription.
type MStreamErrorEvent struct {
	Error    string `json:"error"`
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}
