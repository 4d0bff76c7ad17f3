package server

import (
	"fmt"
	"strconv"
	"time"

	"market-streamer/src/analysis"
	"market-streamer/src/intervals"
	"market-streamer/src/models"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// REST Route Handlers
// -----------------------------------------------------------------------------

func (s *FastAPIServer) getHome(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Welcome to the Stock Data API"})
}

// -----------------------------------------------------------------------------

// barRow is one serialized bar in the /fetch_data response.
type barRow struct {
	Datetime string  `json:"datetime"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   float64 `json:"volume"`
}

// -----------------------------------------------------------------------------

// fetchData is the one-shot history query:
// /fetch_data?symbol=gold&exchange=mcx&interval=in_5_minute&n_bars=100&fut_contract=1
func (s *FastAPIServer) fetchData(c *gin.Context) {
	symbol := c.Query("symbol")
	exchange := c.Query("exchange")
	interval := c.DefaultQuery("interval", "in_daily")

	if symbol == "" || exchange == "" {
		c.JSON(400, gin.H{"detail": "'symbol' and 'exchange' are required"})
		return
	}

	nBars, err := strconv.Atoi(c.DefaultQuery("n_bars", "5000"))
	if err != nil || nBars <= 0 {
		c.JSON(400, gin.H{"detail": "Invalid 'n_bars' value"})
		return
	}

	futContract := 0
	if fc := c.Query("fut_contract"); fc != "" {
		futContract, err = strconv.Atoi(fc)
		if err != nil || futContract < 0 {
			c.JSON(400, gin.H{"detail": "Invalid 'fut_contract' value"})
			return
		}
	}

	// Validate interval
	if !intervals.IsSupported(interval) {
		c.JSON(400, gin.H{"detail": fmt.Sprintf("Invalid 'interval' value: %s", interval)})
		return
	}

	bars, err := s.Source.FetchHistory(c.Request.Context(), symbol, exchange, interval, nBars, futContract)
	if err != nil {
		c.JSON(500, gin.H{"detail": fmt.Sprintf("Error: %v", err)})
		return
	}

	if len(bars) == 0 {
		c.JSON(404, gin.H{"detail": fmt.Sprintf("No data found for symbol %s on exchange %s", symbol, exchange)})
		return
	}

	rows := make([]barRow, len(bars))
	for i, b := range analysis.RoundBars(bars) {
		rows[i] = barRow{
			Datetime: b.Time().Format(time.RFC3339),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			Volume:   b.Volume,
		}
	}

	c.JSON(200, gin.H{"symbol": symbol, "data": rows})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":         "ok",
		"connections":    s.Manager.ConnectionCount(),
		"subscriptions":  s.Manager.SubscriptionCount(),
		"active_tasks":   s.Streams.ActiveTasks(),
		"uptime_seconds": int64(s.Uptime().Seconds()),
	})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getIntervals(c *gin.Context) {
	c.JSON(200, gin.H{"intervals": intervals.Names()})
}

// -----------------------------------------------------------------------------

// getLatest serves the most recently pushed bar for a stream from the cache.
func (s *FastAPIServer) getLatest(c *gin.Context) {
	if s.Cache == nil {
		c.JSON(503, gin.H{"detail": "Cache is not enabled"})
		return
	}

	symbol := c.Query("symbol")
	exchange := c.Query("exchange")
	interval := c.DefaultQuery("interval", intervals.DefaultName)

	if symbol == "" || exchange == "" {
		c.JSON(400, gin.H{"detail": "'symbol' and 'exchange' are required"})
		return
	}
	if !intervals.IsSupported(interval) {
		c.JSON(400, gin.H{"detail": fmt.Sprintf("Invalid 'interval' value: %s", interval)})
		return
	}

	bar, err := s.Cache.GetLatestBar(c.Request.Context(), symbol, exchange, interval)
	if err != nil {
		c.JSON(500, gin.H{"detail": fmt.Sprintf("Error: %v", err)})
		return
	}
	if bar == nil {
		c.JSON(404, gin.H{"detail": fmt.Sprintf("No cached bar for %s:%s", exchange, symbol)})
		return
	}

	c.JSON(200, models.MBarEvent{
		Datetime: bar.Time().Format(time.RFC3339),
		Open:     bar.Open,
		High:     bar.High,
		Low:      bar.Low,
		Close:    bar.Close,
		Volume:   bar.Volume,
		Symbol:   symbol,
		Exchange: exchange,
		Interval: interval,
	})
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) getMarketStatus(c *gin.Context) {
	exchange := c.Query("exchange")
	if exchange == "" {
		c.JSON(400, gin.H{"detail": "'exchange' is required"})
		return
	}

	c.JSON(200, gin.H{
		"exchange":    exchange,
		"open":        s.Scheduler.IsExchangeOpen(exchange),
		"trading_day": s.Scheduler.IsTradingDay(exchange),
	})
}
