package tradingview

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"market-streamer/src/analysis"
	"market-streamer/src/helpers"
	"market-streamer/src/interfaces"
	"market-streamer/src/logger"
	"market-streamer/src/models"

	"market-streamer/src/intervals"
)

// TradingViewSource fetches OHLCV history from a TradingView-UDF style
// endpoint and synthesizes the intervals the provider has no native
// resolution for.
type TradingViewSource struct {
	Config    *models.MConfig
	Network   interfaces.INetworkManager
	Logger    *logger.Logger
	Resampler *analysis.BarResampler
}

// -----------------------------------------------------------------------------

func NewTradingViewSource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *TradingViewSource {
	return &TradingViewSource{
		Config:    cfg,
		Network:   netMgr,
		Logger:    logger.NewLogger(cfg.LogLevel, "TradingViewSource-"+cfg.Source.Name),
		Resampler: &analysis.BarResampler{},
	}
}

// -----------------------------------------------------------------------------

func (s *TradingViewSource) Name() string {
	return s.Config.Source.Name
}

// -----------------------------------------------------------------------------
// UDF history response (flat arrays, status field "s")
// -----------------------------------------------------------------------------

type udfHistoryResponse struct {
	Status    string    `json:"s"` // "ok", "no_data" or "error"
	ErrorMsg  string    `json:"errmsg"`
	Timestamp []int64   `json:"t"`
	Open      []float64 `json:"o"`
	High      []float64 `json:"h"`
	Low       []float64 `json:"l"`
	Close     []float64 `json:"c"`
	Volume    []float64 `json:"v"`
}

// -----------------------------------------------------------------------------

// FetchLatest retrieves the most recent bar for a stream. For synthetic
// intervals it fetches enough native bars to fill the current window and
// aggregates them.
func (s *TradingViewSource) FetchLatest(ctx context.Context, symbol, exchange, interval string) (*models.MBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iv, ok := intervals.Lookup(interval)
	if !ok {
		return nil, helpers.NewValidationError(fmt.Sprintf("Invalid interval: %s", interval))
	}

	countback := 1
	if iv.NeedsResample() {
		countback = iv.BarsPerWindow()
		if countback < s.Config.Source.ResampleBars {
			countback = s.Config.Source.ResampleBars
		}
	}

	bars, err := s.fetchBars(symbol, exchange, iv.Resolution, countback, 0)
	if err != nil {
		return nil, err
	}

	if iv.NeedsResample() {
		bars = s.Resampler.ResampleBars(bars, iv.WindowSeconds)
	}

	if len(bars) == 0 {
		return nil, helpers.NewUpstreamError(fmt.Sprintf("no data for %s:%s", exchange, symbol), nil)
	}

	latest := bars[len(bars)-1]
	return &latest, nil
}

// -----------------------------------------------------------------------------

// FetchHistory retrieves up to nBars bars for the one-shot REST query.
func (s *TradingViewSource) FetchHistory(ctx context.Context, symbol, exchange, interval string, nBars, futContract int) ([]models.MBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iv, ok := intervals.Lookup(interval)
	if !ok {
		return nil, helpers.NewValidationError(fmt.Sprintf("Invalid interval: %s", interval))
	}

	countback := nBars
	if iv.NeedsResample() {
		countback = nBars * iv.BarsPerWindow()
	}

	bars, err := s.fetchBars(symbol, exchange, iv.Resolution, countback, futContract)
	if err != nil {
		return nil, err
	}

	if iv.NeedsResample() {
		bars = s.Resampler.ResampleBars(bars, iv.WindowSeconds)
	}

	if len(bars) > nBars {
		bars = bars[len(bars)-nBars:]
	}

	return bars, nil
}

// -----------------------------------------------------------------------------

// fetchBars performs the UDF history request and converts the flat arrays
// into a clean, sorted bar series.
func (s *TradingViewSource) fetchBars(symbol, exchange, resolution string, countback, futContract int) ([]models.MBar, error) {
	ticker := fmt.Sprintf("%s:%s", exchange, symbol)
	if futContract > 0 {
		// Continuous futures notation, e.g. MCX:GOLD1!
		ticker = fmt.Sprintf("%s%d!", ticker, futContract)
	}

	params := map[string]string{
		"symbol":     ticker,
		"resolution": resolution,
		"countback":  strconv.Itoa(countback),
	}

	url := fmt.Sprintf("%s/history", s.Config.Source.Endpoint)

	respBytes, err := s.Network.Get(url, params)
	if err != nil {
		return nil, helpers.NewUpstreamError(fmt.Sprintf("network error for %s", ticker), err)
	}

	return s.parseHistoryResponse(ticker, respBytes)
}

// -----------------------------------------------------------------------------

func (s *TradingViewSource) parseHistoryResponse(ticker string, data []byte) ([]models.MBar, error) {
	var resp udfHistoryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, helpers.NewUpstreamError(fmt.Sprintf("json unmarshal failed for %s", ticker), err)
	}

	switch resp.Status {
	case "ok":
	case "no_data":
		return nil, nil
	default:
		msg := resp.ErrorMsg
		if msg == "" {
			msg = fmt.Sprintf("status %q", resp.Status)
		}
		return nil, helpers.NewUpstreamError(fmt.Sprintf("provider error for %s: %s", ticker, msg), nil)
	}

	if len(resp.Timestamp) == 0 {
		return nil, nil
	}

	// Alignment check: the flat arrays must describe the same series
	if len(resp.Timestamp) != len(resp.Open) ||
		len(resp.Timestamp) != len(resp.High) ||
		len(resp.Timestamp) != len(resp.Low) ||
		len(resp.Timestamp) != len(resp.Close) ||
		len(resp.Timestamp) != len(resp.Volume) {
		s.Logger.Info("Data alignment error for %s: Mismatched array lengths", ticker)
		return nil, helpers.NewUpstreamError(fmt.Sprintf("data alignment error for %s", ticker), nil)
	}

	bars := make([]models.MBar, 0, len(resp.Timestamp))
	for i := range resp.Timestamp {
		if resp.Close[i] <= 0 || resp.Volume[i] < 0 {
			s.Logger.Debug("Skipping invalid point for %s: close=%f, volume=%f", ticker, resp.Close[i], resp.Volume[i])
			continue
		}

		bars = append(bars, models.MBar{
			Timestamp: resp.Timestamp[i],
			Open:      resp.Open[i],
			High:      resp.High[i],
			Low:       resp.Low[i],
			Close:     resp.Close[i],
			Volume:    resp.Volume[i],
		})
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Timestamp < bars[j].Timestamp
	})

	if len(bars) > 0 {
		s.Logger.Debug("Fetched %s: %d valid points [%d -> %d]", ticker, len(bars), bars[0].Timestamp, bars[len(bars)-1].Timestamp)
	}

	return bars, nil
}
