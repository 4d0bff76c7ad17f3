package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-streamer/src/logger"
)

func TestGetCalendarKnownExchanges(t *testing.T) {
	for _, exchange := range []string{"NYSE", "NASDAQ", "LSE", "NSE", "MCX"} {
		cal := GetCalendar(exchange)
		require.NotNil(t, cal, exchange)
		assert.NotNil(t, cal.Timezone, exchange)
	}
}

func TestGetCalendarUnknownExchangeFallsBack(t *testing.T) {
	cal := GetCalendar("NOT_AN_EXCHANGE")
	require.NotNil(t, cal)
}

func TestFallbackCalendarHours(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	cal := &TradingCalendar{Fallback: true, Timezone: ny}

	// Wednesday 2025-06-04
	open := time.Date(2025, 6, 4, 10, 0, 0, 0, ny)
	beforeOpen := time.Date(2025, 6, 4, 9, 15, 0, 0, ny)
	afterClose := time.Date(2025, 6, 4, 16, 30, 0, 0, ny)
	saturday := time.Date(2025, 6, 7, 11, 0, 0, 0, ny)

	assert.True(t, cal.IsOpenOnMinute(open))
	assert.False(t, cal.IsOpenOnMinute(beforeOpen))
	assert.False(t, cal.IsOpenOnMinute(afterClose))
	assert.False(t, cal.IsOpenOnMinute(saturday))

	assert.True(t, cal.IsTradingDay(open))
	assert.False(t, cal.IsTradingDay(saturday))
}

func TestMarketSchedulerCachesCalendars(t *testing.T) {
	ms := NewMarketScheduler(logger.NewLogger("ERROR", "test"))

	ms.IsTradingDay("NYSE")
	ms.IsTradingDay("NYSE")
	ms.IsExchangeOpen("NSE")

	assert.Len(t, ms.Calendars, 2)
}
