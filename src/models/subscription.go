package models

import "time"

// -----------------------------------------------------------------------------
// Subscription model
// -----------------------------------------------------------------------------

// MSubscription describes one stream request: a (symbol, exchange) pair plus
// the interval to sample and the cadence to poll at. Two subscriptions are the
// same stream when symbol and exchange match; interval and refresh period are
// reconfigurable attributes of that stream.
type MSubscription struct {
	Symbol        string        `json:"symbol"`
	Exchange      string        `json:"exchange"`
	Interval      string        `json:"interval"`
	RefreshPeriod time.Duration `json:"refresh_period"`
}

// -----------------------------------------------------------------------------

// MStreamKey identifies a stream inside one connection's subscription set.
type MStreamKey struct {
	Symbol   string
	Exchange string
}

// -----------------------------------------------------------------------------

// Key returns the identity of the stream this subscription belongs to.
func (s MSubscription) Key() MStreamKey {
	return MStreamKey{Symbol: s.Symbol, Exchange: s.Exchange}
}
