package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-streamer/src/models"
)

// -----------------------------------------------------------------------------
// Test helpers
// -----------------------------------------------------------------------------

// historySource serves a canned history and records the last query.
type historySource struct {
	bars     []models.MBar
	err      error
	lastN    int
	lastFut  int
	lastIntv string
}

func (s *historySource) Name() string { return "history" }

func (s *historySource) FetchLatest(ctx context.Context, symbol, exchange, interval string) (*models.MBar, error) {
	return nil, fmt.Errorf("not used")
}

func (s *historySource) FetchHistory(ctx context.Context, symbol, exchange, interval string, nBars, futContract int) ([]models.MBar, error) {
	s.lastN = nBars
	s.lastFut = futContract
	s.lastIntv = interval
	return s.bars, s.err
}

func doGet(t *testing.T, s *FastAPIServer, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	s.engine.ServeHTTP(w, req)

	var body map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func newRESTServer(t *testing.T, source *historySource) *FastAPIServer {
	t.Helper()
	s := newTestServer(t)
	s.Source = source
	return s
}

// -----------------------------------------------------------------------------
// /fetch_data
// -----------------------------------------------------------------------------

func TestFetchDataReturnsBars(t *testing.T) {
	source := &historySource{bars: []models.MBar{
		{Timestamp: 1700000000, Open: 10.123, High: 12.456, Low: 9.789, Close: 11.111, Volume: 100},
	}}
	s := newRESTServer(t, source)

	w, body := doGet(t, s, "/fetch_data?symbol=AAPL&exchange=NASDAQ&interval=in_1_minute&n_bars=10")
	require.Equal(t, 200, w.Code)

	assert.Equal(t, "AAPL", body["symbol"])
	assert.Equal(t, 10, source.lastN)
	assert.Equal(t, "in_1_minute", source.lastIntv)

	rows, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)

	row := rows[0].(map[string]interface{})
	assert.Equal(t, 10.12, row["open"], "prices are rounded to two decimals")
	assert.Equal(t, 12.46, row["high"])
	assert.NotEmpty(t, row["datetime"])
}

func TestFetchDataDefaults(t *testing.T) {
	source := &historySource{bars: []models.MBar{{Timestamp: 1, Open: 1, High: 1, Low: 1, Close: 1, Volume: 1}}}
	s := newRESTServer(t, source)

	w, _ := doGet(t, s, "/fetch_data?symbol=AAPL&exchange=NASDAQ")
	require.Equal(t, 200, w.Code)

	assert.Equal(t, 5000, source.lastN)
	assert.Equal(t, "in_daily", source.lastIntv)
	assert.Equal(t, 0, source.lastFut)
}

func TestFetchDataValidation(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		detail string
	}{
		{"missing symbol", "/fetch_data?exchange=NASDAQ", "'symbol' and 'exchange' are required"},
		{"missing exchange", "/fetch_data?symbol=AAPL", "'symbol' and 'exchange' are required"},
		{"bad interval", "/fetch_data?symbol=AAPL&exchange=NASDAQ&interval=bogus", "Invalid 'interval' value: bogus"},
		{"bad n_bars", "/fetch_data?symbol=AAPL&exchange=NASDAQ&n_bars=zero", "Invalid 'n_bars' value"},
		{"bad fut_contract", "/fetch_data?symbol=GOLD&exchange=MCX&fut_contract=x", "Invalid 'fut_contract' value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRESTServer(t, &historySource{})
			w, body := doGet(t, s, tt.path)
			assert.Equal(t, 400, w.Code)
			assert.Equal(t, tt.detail, body["detail"])
		})
	}
}

func TestFetchDataNoData(t *testing.T) {
	s := newRESTServer(t, &historySource{})

	w, body := doGet(t, s, "/fetch_data?symbol=AAPL&exchange=NASDAQ")
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "No data found for symbol AAPL on exchange NASDAQ", body["detail"])
}

func TestFetchDataUpstreamFailure(t *testing.T) {
	s := newRESTServer(t, &historySource{err: fmt.Errorf("provider down")})

	w, body := doGet(t, s, "/fetch_data?symbol=AAPL&exchange=NASDAQ")
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, body["detail"], "provider down")
}

func TestFetchDataFuturesContract(t *testing.T) {
	source := &historySource{bars: []models.MBar{{Timestamp: 1, Open: 1, High: 1, Low: 1, Close: 1, Volume: 1}}}
	s := newRESTServer(t, source)

	w, _ := doGet(t, s, "/fetch_data?symbol=GOLD&exchange=MCX&fut_contract=1")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, 1, source.lastFut)
}

// -----------------------------------------------------------------------------
// Misc endpoints
// -----------------------------------------------------------------------------

func TestHomeEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doGet(t, s, "/")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Welcome to the Stock Data API", body["message"])
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	newTestClient(s)

	w, body := doGet(t, s, "/api/health")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(1), body["connections"])
	assert.Equal(t, float64(0), body["subscriptions"])
}

func TestIntervalsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w, body := doGet(t, s, "/api/intervals")
	assert.Equal(t, 200, w.Code)

	names, ok := body["intervals"].([]interface{})
	require.True(t, ok)
	assert.Len(t, names, 21)
}

func TestLatestWithoutCache(t *testing.T) {
	s := newTestServer(t) // cache is nil

	w, body := doGet(t, s, "/api/latest?symbol=AAPL&exchange=NASDAQ")
	assert.Equal(t, 503, w.Code)
	assert.Equal(t, "Cache is not enabled", body["detail"])
}

func TestMarketStatusRequiresExchange(t *testing.T) {
	s := newTestServer(t)

	w, _ := doGet(t, s, "/api/market_status")
	assert.Equal(t, 400, w.Code)

	w, body := doGet(t, s, "/api/market_status?exchange=NYSE")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "NYSE", body["exchange"])
	assert.Contains(t, body, "open")
	assert.Contains(t, body, "trading_day")
}
