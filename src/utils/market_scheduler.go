package utils

import (
	"sync"
	"time"

	"market-streamer/src/logger"
)

// MarketScheduler caches one TradingCalendar per exchange code.
type MarketScheduler struct {
	Calendars map[string]*TradingCalendar
	Logger    *logger.Logger
	mu        sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewMarketScheduler(l *logger.Logger) *MarketScheduler {
	return &MarketScheduler{
		Calendars: make(map[string]*TradingCalendar),
		Logger:    l,
	}
}

// -----------------------------------------------------------------------------

func (ms *MarketScheduler) calendarFor(exchange string) *TradingCalendar {
	ms.mu.RLock()
	cal, ok := ms.Calendars[exchange]
	ms.mu.RUnlock()
	if ok {
		return cal
	}

	cal = GetCalendar(exchange)

	ms.mu.Lock()
	ms.Calendars[exchange] = cal
	ms.mu.Unlock()

	ms.Logger.Debug("MarketScheduler: loaded calendar for exchange %s", exchange)
	return cal
}

// -----------------------------------------------------------------------------

// IsExchangeOpen checks whether the exchange is trading right now.
func (ms *MarketScheduler) IsExchangeOpen(exchange string) bool {
	return ms.calendarFor(exchange).IsOpenOnMinute(time.Now().UTC())
}

// -----------------------------------------------------------------------------

// IsTradingDay checks whether today is a business day on the exchange.
func (ms *MarketScheduler) IsTradingDay(exchange string) bool {
	return ms.calendarFor(exchange).IsTradingDay(time.Now().UTC())
}
