package utils

import (
	"log"
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// TradingCalendar answers "is this exchange trading right now" using
// scmhub/calendar.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// micByExchange maps the exchange codes clients subscribe with to MIC codes
// (ISO 10383). Unknown exchanges fall back to NYSE hours.
var micByExchange = map[string]string{
	"NYSE":     "xnys",
	"NASDAQ":   "xnas",
	"AMEX":     "xase",
	"LSE":      "xlon",
	"EURONEXT": "xpar",
	"XETRA":    "xfra",
	"FWB":      "xfra",
	"SIX":      "xswx",
	"TSX":      "xtse",
	"TSXV":     "xtsx",
	"TSE":      "xtks",
	"HKEX":     "xhkg",
	"ASX":      "xasx",
	"KRX":      "xkrx",
	"TWSE":     "xtai",
	"SSE":      "xshg",
	"SZSE":     "xshe",
	"NSE":      "xbom",
	"BSE":      "xbom",
	"MCX":      "xbom",
}

// -----------------------------------------------------------------------------

func GetCalendar(exchange string) *TradingCalendar {
	mic, ok := micByExchange[strings.ToUpper(exchange)]
	if !ok {
		mic = "xnys"
	}

	// scmhub/calendar.GetCalendar returns a calendar by MIC
	cal := calendar.GetCalendar(mic)
	if cal == nil {
		// Fallback to xnys if not found
		cal = calendar.GetCalendar("xnys")
	}

	if cal == nil {
		log.Printf("WARNING: Failed to load calendar for MIC '%s' and fallback 'xnys'. Using simple fallback (Mon-Fri 09:30-16:00 NY).", mic)
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC // Worst case
		}
		return &TradingCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	// Normalize to timezone if available
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		// Simple fallback: Mon-Fri
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	// Library handles IsHoliday / IsBusinessDay
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	// Normalize to timezone if available
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 NY Time
		if (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16 {
			return true
		}
		return false
	}

	return tc.Calendar.IsOpen(t)
}
