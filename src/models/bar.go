package models

import "time"

// MBar represents one OHLCV observation as returned by the data source.
type MBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// -----------------------------------------------------------------------------

// Time returns the bar timestamp as UTC time.
func (b MBar) Time() time.Time {
	return time.Unix(b.Timestamp, 0).UTC()
}
